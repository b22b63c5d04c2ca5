// Package gdnative builds godot_variant arrays in C memory for the GDNative
// plugin ABI.
//
// Only 64-bit targets are supported: the variant payload sits at offset 8
// and array views are indexed through a [1 << 31]unsafe.Pointer type.
package gdnative
