package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/electricface/go-gdnative/gdnative"
	. "gopkg.in/check.v1"
)

func Test(t *testing.T) {
	TestingT(t)
}

type GdVariantTestSuite struct {
	dir string
}

var _ = Suite(&GdVariantTestSuite{})

func (s *GdVariantTestSuite) SetUpTest(c *C) {
	s.dir = c.MkDir()
}

func (s *GdVariantTestSuite) TestParseArg(c *C) {
	e, err := parseArg("int:42")
	c.Assert(err, IsNil)
	c.Check(e, Equals, element{Type: "int", Value: "42"})

	e, err = parseArg("nil")
	c.Assert(err, IsNil)
	c.Check(e.Type, Equals, "nil")

	_, err = parseArg("42")
	c.Check(err, ErrorMatches, `"42", want type:value: bad element`)
}

func (s *GdVariantTestSuite) TestLoadConfig(c *C) {
	filename := filepath.Join(s.dir, "elements.yaml")
	data := "elements:\n  - type: int\n    value: \"7\"\n  - type: vector2\n    value: 1,2\n"
	c.Assert(os.WriteFile(filename, []byte(data), 0644), IsNil)

	var cfg config
	c.Assert(loadConfig(filename, &cfg), IsNil)
	c.Check(cfg.Elements, DeepEquals, []element{
		{Type: "int", Value: "7"},
		{Type: "vector2", Value: "1,2"},
	})

	var missing config
	c.Check(loadConfig(filepath.Join(s.dir, "nope.yaml"), &missing), IsNil)
	c.Check(missing.Elements, HasLen, 0)
}

func (s *GdVariantTestSuite) TestCollectElements(c *C) {
	filename := filepath.Join(s.dir, "elements.yaml")
	c.Assert(os.WriteFile(filename, []byte("elements:\n  - type: bool\n    value: \"true\"\n"), 0644), IsNil)

	elements, err := collectElements(filename, []string{"real:1.5"})
	c.Assert(err, IsNil)
	c.Check(elements, DeepEquals, []element{
		{Type: "bool", Value: "true"},
		{Type: "real", Value: "1.5"},
	})
}

func (s *GdVariantTestSuite) TestDump(c *C) {
	before := gdnative.LiveAllocations()

	var buf bytes.Buffer
	err := dump(&buf, []element{
		{Type: "int", Value: "42"},
		{Type: "nil"},
		{Type: "real", Value: "1.5"},
		{Type: "bool", Value: "false"},
		{Type: "vector3", Value: "1, 2, 3"},
		{Type: "color", Value: "1,0,0,1"},
	})
	c.Assert(err, IsNil)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	c.Check(lines, DeepEquals, []string{
		"0\tint\t42",
		"1\tNil\tnull",
		"2\tfloat\t1.5",
		"3\tbool\tfalse",
		"4\tVector3\t{X:1 Y:2 Z:3}",
		"5\tColor\t{R:1 G:0 B:0 A:1}",
	})
	c.Check(gdnative.LiveAllocations(), Equals, before)
}

func (s *GdVariantTestSuite) TestDumpBadElement(c *C) {
	before := gdnative.LiveAllocations()

	var buf bytes.Buffer
	err := dump(&buf, []element{
		{Type: "int", Value: "1"},
		{Type: "vector2", Value: "1"},
	})
	c.Check(err, ErrorMatches, `element 1: "1" has 1 components, want 2: bad element`)
	c.Check(buf.Len(), Equals, 0)
	c.Check(gdnative.LiveAllocations(), Equals, before)

	err = dump(&buf, []element{{Type: "string", Value: "x"}})
	c.Check(err, ErrorMatches, `element 0: unsupported type "string": bad element`)
}
