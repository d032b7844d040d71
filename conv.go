package bgst

const maxInt = int(^uint(0) >> 1)

// intFromU32 converts a uint32 to an int.
func intFromU32(v uint32) (int, error) {
	if uint64(v) > uint64(maxInt) {
		return 0, ErrSizeOverflow
	}

	return int(v), nil
}
