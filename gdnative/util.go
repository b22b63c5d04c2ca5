package gdnative

// arrLenMax bounds every C array this package indexes, AsSlice cannot
// reach past it.
const arrLenMax = 1 << 31

func Int2Bool(v int) bool {
	return v != 0
}

func Bool2Int(v bool) int {
	if v {
		return 1
	}
	return 0
}
