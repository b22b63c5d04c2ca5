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

/*
   #include <stdint.h>
   #include <stdlib.h>
   #include <string.h>

   // Same layout as <gdnative/variant.h>, the engine never lets us look inside.
   #define GODOT_VARIANT_SIZE (16 + sizeof(void *))

   typedef struct {
   	uint8_t _dont_touch_that[GODOT_VARIANT_SIZE];
   } godot_variant;

   static godot_variant **go_godot_variant_build_array(size_t length) {
   	return calloc(length > 0 ? length : 1, sizeof(godot_variant *));
   }

   // 把 element 复制到堆上，而不是栈上的局部变量，数组里保存的地址才不会悬空。
   // 原来的槽位通过 old 返回，由调用者释放。
   static godot_variant *go_godot_variant_add_element(godot_variant **array,
   	godot_variant *element, size_t index, godot_variant **old) {

   	godot_variant *copy = malloc(sizeof(godot_variant));
   	if (copy == NULL) {
   		return NULL;
   	}
   	memcpy(copy, element, sizeof(godot_variant));
   	*old = array[index];
   	array[index] = copy;
   	return copy;
   }

   static godot_variant *go_godot_new_variant(void) {
   	return malloc(sizeof(godot_variant));
   }

   static void go_godot_variant_copy(godot_variant *dst, godot_variant *src) {
   	memcpy(dst, src, sizeof(godot_variant));
   }
*/
import "C"
import "unsafe"

// SizeOfVariant is sizeof(godot_variant) for the target platform.
var SizeOfVariant = int(C.sizeof_godot_variant)

func Malloc(n int) unsafe.Pointer {
	if n <= 0 {
		n = 1
	}
	return tracked(C.malloc(C.size_t(n)), n)
}

func Malloc0(n int) unsafe.Pointer {
	if n <= 0 {
		n = 1
	}
	return tracked(C.calloc(1, C.size_t(n)), n)
}

// Free releases memory returned by Malloc, Malloc0 or any constructor of
// this package.
func Free(p unsafe.Pointer) {
	if p == nil {
		return
	}
	untrack(p)
	C.free(p)
}

func buildArray(length int) unsafe.Pointer {
	p := C.go_godot_variant_build_array(C.size_t(length))
	return tracked(unsafe.Pointer(p), int(unsafe.Sizeof(uintptr(0)))*length)
}

// addElement stores a heap copy of element at array[index] and returns the
// copy together with the slot's previous content.
func addElement(array unsafe.Pointer, element unsafe.Pointer, index int) (slot, old unsafe.Pointer) {
	var cOld *C.godot_variant
	ret := C.go_godot_variant_add_element((**C.godot_variant)(array),
		(*C.godot_variant)(element), C.size_t(index), &cOld)
	slot = tracked(unsafe.Pointer(ret), SizeOfVariant)
	return slot, unsafe.Pointer(cOld)
}

func newVariant() unsafe.Pointer {
	return tracked(unsafe.Pointer(C.go_godot_new_variant()), SizeOfVariant)
}

func copyVariant(dst, src unsafe.Pointer) {
	C.go_godot_variant_copy((*C.godot_variant)(dst), (*C.godot_variant)(src))
}

func variantBytes(p unsafe.Pointer) []byte {
	return C.GoBytes(p, C.int(SizeOfVariant))
}
