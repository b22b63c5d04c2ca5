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
	"bytes"
	"strconv"
	"unsafe"

	"golang.org/x/xerrors"
)

// VariantType is the type tag of a godot_variant.
type VariantType int32

const (
	VariantTypeNil VariantType = iota
	VariantTypeBool
	VariantTypeInt
	VariantTypeReal
	VariantTypeString
	VariantTypeVector2
	VariantTypeRect2
	VariantTypeVector3
	VariantTypeTransform2D
	VariantTypePlane
	VariantTypeQuat
	VariantTypeAabb
	VariantTypeBasis
	VariantTypeTransform
	VariantTypeColor
	VariantTypeNodePath
	VariantTypeRid
	VariantTypeObject
	VariantTypeDictionary
	VariantTypeArray
	VariantTypePoolByteArray
	VariantTypePoolIntArray
	VariantTypePoolRealArray
	VariantTypePoolStringArray
	VariantTypePoolVector2Array
	VariantTypePoolVector3Array
	VariantTypePoolColorArray
)

var variantTypeNames = [...]string{
	"Nil", "bool", "int", "float", "String", "Vector2", "Rect2", "Vector3",
	"Transform2D", "Plane", "Quat", "AABB", "Basis", "Transform", "Color",
	"NodePath", "RID", "Object", "Dictionary", "Array", "PoolByteArray",
	"PoolIntArray", "PoolRealArray", "PoolStringArray", "PoolVector2Array",
	"PoolVector3Array", "PoolColorArray",
}

func (t VariantType) String() string {
	if t < 0 || int(t) >= len(variantTypeNames) {
		return "VariantType(" + strconv.Itoa(int(t)) + ")"
	}
	return variantTypeNames[t]
}

// The engine keeps the type tag at offset 0 and 8-aligns the payload union.
const variantDataOffset = 8

// Variant is a handle to a godot_variant living in C memory.
type Variant struct {
	P unsafe.Pointer
}

// NewVariant allocates one godot_variant. The content is not initialized,
// it has to be filled before the engine reads it.
func NewVariant() (Variant, error) {
	p := newVariant()
	if p == nil {
		return Variant{}, xerrors.Errorf("new variant: %w", ErrNoMem)
	}
	return Variant{P: p}, nil
}

func newVariantOfType(t VariantType) (Variant, error) {
	p := Malloc0(SizeOfVariant)
	if p == nil {
		return Variant{}, xerrors.Errorf("new %s variant: %w", t, ErrNoMem)
	}
	v := Variant{P: p}
	*(*int32)(v.P) = int32(t)
	return v, nil
}

func NewVariantNil() (Variant, error) {
	return newVariantOfType(VariantTypeNil)
}

func NewVariantBool(value bool) (Variant, error) {
	v, err := newVariantOfType(VariantTypeBool)
	if err != nil {
		return Variant{}, err
	}
	*(*uint8)(v.data()) = uint8(Bool2Int(value))
	return v, nil
}

func NewVariantInt(value int64) (Variant, error) {
	v, err := newVariantOfType(VariantTypeInt)
	if err != nil {
		return Variant{}, err
	}
	*(*int64)(v.data()) = value
	return v, nil
}

// NewVariantReal stores value as a double, like the engine does for every
// float variant.
func NewVariantReal(value float64) (Variant, error) {
	v, err := newVariantOfType(VariantTypeReal)
	if err != nil {
		return Variant{}, err
	}
	*(*float64)(v.data()) = value
	return v, nil
}

func (v Variant) data() unsafe.Pointer {
	return unsafe.Pointer(uintptr(v.P) + uintptr(variantDataOffset))
}

func (v Variant) IsNil() bool {
	return v.P == nil
}

func (v *Variant) Free() {
	Free(v.P)
	v.P = nil
}

// Type reads the type tag. v must be initialized.
func (v Variant) Type() VariantType {
	return VariantType(*(*int32)(v.P))
}

func (v Variant) expectType(want VariantType) error {
	if v.IsNil() {
		return ErrNilVariant
	}
	if got := v.Type(); got != want {
		return xerrors.Errorf("variant is %s, not %s: %w", got, want, ErrTypeMismatch)
	}
	return nil
}

func (v Variant) AsBool() (bool, error) {
	if err := v.expectType(VariantTypeBool); err != nil {
		return false, err
	}
	return Int2Bool(int(*(*uint8)(v.data()))), nil
}

func (v Variant) AsInt() (int64, error) {
	if err := v.expectType(VariantTypeInt); err != nil {
		return 0, err
	}
	return *(*int64)(v.data()), nil
}

func (v Variant) AsReal() (float64, error) {
	if err := v.expectType(VariantTypeReal); err != nil {
		return 0, err
	}
	return *(*float64)(v.data()), nil
}

// Bytes returns a copy of the opaque record.
func (v Variant) Bytes() []byte {
	if v.IsNil() {
		return nil
	}
	return variantBytes(v.P)
}

// Equal compares the two records byte by byte.
func (v Variant) Equal(other Variant) bool {
	if v.IsNil() || other.IsNil() {
		return v.P == other.P
	}
	return bytes.Equal(v.Bytes(), other.Bytes())
}

// CopyTo does a shallow copy of v into dst.
func (v Variant) CopyTo(dst Variant) {
	copyVariant(dst.P, v.P)
}

// Clone returns a new variant holding a shallow copy of v, the caller owns it.
func (v Variant) Clone() (Variant, error) {
	if v.IsNil() {
		return Variant{}, ErrNilVariant
	}
	dst, err := NewVariant()
	if err != nil {
		return Variant{}, err
	}
	v.CopyTo(dst)
	return dst, nil
}
