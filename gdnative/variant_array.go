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

package gdnative

import (
	"unsafe"

	"go.uber.org/zap"
	"golang.org/x/xerrors"
)

// VariantArray is a C godot_variant ** with its length. Populated slots are
// owned by the array.
type VariantArray struct {
	P   unsafe.Pointer
	Len int
}

// BuildVariantArray allocates length empty slots. A zero length array still
// gets a valid handle. length must be in [0, 1<<31).
func BuildVariantArray(length int) (VariantArray, error) {
	if length < 0 || length >= arrLenMax {
		return VariantArray{}, xerrors.Errorf("build array of length %d: %w", length, ErrIndexOutOfRange)
	}
	p := buildArray(length)
	if p == nil {
		return VariantArray{}, xerrors.Errorf("build array of length %d: %w", length, ErrNoMem)
	}
	return VariantArray{
		P:   p,
		Len: length,
	}, nil
}

// NewVariantArray builds an array holding copies of values. Nothing is left
// allocated when it fails.
func NewVariantArray(values ...Variant) (VariantArray, error) {
	arr, err := BuildVariantArray(len(values))
	if err != nil {
		return VariantArray{}, err
	}
	for i, value := range values {
		err = arr.AddElement(value, i)
		if err != nil {
			arr.FreeAll()
			return VariantArray{}, err
		}
	}
	return arr, nil
}

// AddElement stores a copy of element at index. The copy lives in C memory
// until the array is released with FreeAll, element stays owned by the caller.
func (arr *VariantArray) AddElement(element Variant, index int) error {
	if element.IsNil() {
		return xerrors.Errorf("add element %d: %w", index, ErrNilVariant)
	}
	if index < 0 || index >= arr.Len {
		return xerrors.Errorf("add element %d to array of length %d: %w",
			index, arr.Len, ErrIndexOutOfRange)
	}
	slot, old := addElement(arr.P, element.P, index)
	if slot == nil {
		return xerrors.Errorf("add element %d: %w", index, ErrNoMem)
	}
	if old != nil {
		Logger().Debug("replace slot", zap.Int("index", index))
		Free(old)
	}
	return nil
}

// Element returns a view of the slot at index. The slot stays owned by the
// array: calling Free on the view leaves a dangling pointer behind that
// FreeAll will free again, use ClearElement instead.
func (arr VariantArray) Element(index int) (Variant, error) {
	if index < 0 || index >= arr.Len {
		return Variant{}, xerrors.Errorf("element %d of array of length %d: %w",
			index, arr.Len, ErrIndexOutOfRange)
	}
	p := arr.AsSlice()[index]
	if p == nil {
		return Variant{}, xerrors.Errorf("element %d: %w", index, ErrNilVariant)
	}
	return Variant{P: p}, nil
}

// ClearElement frees the slot at index and leaves it empty. Clearing an
// empty slot is a no-op.
func (arr *VariantArray) ClearElement(index int) error {
	if index < 0 || index >= arr.Len {
		return xerrors.Errorf("clear element %d of array of length %d: %w",
			index, arr.Len, ErrIndexOutOfRange)
	}
	slice := arr.AsSlice()
	Free(slice[index])
	slice[index] = nil
	return nil
}

// Base returns the godot_variant ** to hand over to the engine.
func (arr VariantArray) Base() unsafe.Pointer {
	return arr.P
}

func (arr VariantArray) AsSlice() []unsafe.Pointer {
	if arr.Len < 0 {
		panic("arr.len < 0")
	}
	if arr.Len == 0 {
		return nil
	}
	slice := (*(*[arrLenMax]unsafe.Pointer)(arr.P))[:arr.Len:arr.Len]
	return slice
}

// Populated counts the slots filled by AddElement.
func (arr VariantArray) Populated() int {
	n := 0
	for _, p := range arr.AsSlice() {
		if p != nil {
			n++
		}
	}
	return n
}

// Copy clones every slot, unpopulated slots come back as nil handles.
// The caller owns the returned variants.
func (arr VariantArray) Copy() ([]Variant, error) {
	if arr.Len < 0 {
		panic("arr.len < 0")
	}
	if arr.Len == 0 {
		return nil, nil
	}
	result := make([]Variant, arr.Len)
	for i, p := range arr.AsSlice() {
		if p == nil {
			continue
		}
		clone, err := Variant{P: p}.Clone()
		if err != nil {
			for j := range result[:i] {
				result[j].Free()
			}
			return nil, err
		}
		result[i] = clone
	}
	return result, nil
}

// free container
func (arr *VariantArray) Free() {
	Free(arr.P)
	arr.P = nil
	arr.Len = 0
}

// FreeAll releases every owned slot and the container.
func (arr *VariantArray) FreeAll() {
	if arr.Len < 0 {
		panic("arr.len < 0")
	}
	if arr.P == nil {
		return
	}
	slice := arr.AsSlice()
	for i := range slice {
		Free(slice[i])
		slice[i] = nil
	}
	arr.Free()
}
