/*
 * Copyright (C) 2019 ~ 2020 Uniontech Software Technology Co.,Ltd
 *
 * Author:
 *
 * Maintainer:
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 */

package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/electricface/go-gdnative/gdnative"
	"go.uber.org/zap"
	"golang.org/x/xerrors"
)

var optConfig string
var optVerbose bool

func init() {
	flag.StringVar(&optConfig, "c", "", "yaml file with the elements")
	flag.BoolVar(&optVerbose, "v", false, "verbose")
}

// dump builds a variant array from elements, prints every slot and releases
// everything it allocated.
func dump(w io.Writer, elements []element) error {
	values := make([]gdnative.Variant, 0, len(elements))
	defer func() {
		for i := range values {
			values[i].Free()
		}
	}()

	for i, e := range elements {
		v, err := newVariant(e)
		if err != nil {
			return xerrors.Errorf("element %d: %w", i, err)
		}
		values = append(values, v)
	}

	arr, err := gdnative.NewVariantArray(values...)
	if err != nil {
		return err
	}
	defer arr.FreeAll()

	for i := 0; i < arr.Len; i++ {
		v, err := arr.Element(i)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%d\t%s\t%s\n", i, v.Type(), formatVariant(v))
		if err != nil {
			return err
		}
	}
	return nil
}

func collectElements(cfgFile string, args []string) ([]element, error) {
	var cfg config
	if cfgFile != "" {
		err := loadConfig(cfgFile, &cfg)
		if err != nil {
			return nil, err
		}
	}
	elements := cfg.Elements
	for _, arg := range args {
		e, err := parseArg(arg)
		if err != nil {
			return nil, err
		}
		elements = append(elements, e)
	}
	return elements, nil
}

func main() {
	flag.Parse()

	var log *zap.Logger
	if optVerbose {
		log, _ = zap.NewDevelopment()
	} else {
		log, _ = zap.NewProduction()
	}
	defer log.Sync()
	gdnative.SetLogger(log)
	gdnative.SetDebug(optVerbose)

	elements, err := collectElements(optConfig, flag.Args())
	if err != nil {
		log.Fatal("bad input", zap.Error(err))
	}
	log.Debug("elements", zap.Int("count", len(elements)))

	err = dump(os.Stdout, elements)
	if err != nil {
		log.Fatal("dump", zap.Error(err))
	}

	if n := gdnative.LiveAllocations(); n != 0 {
		log.Error("leaked allocations", zap.Int64("count", n))
		os.Exit(1)
	}
}
