package errs

// Sentinels shared by the command and query sides.
var (
	ErrBookingNotFound = New("booking not found")
	ErrRoomNotFound    = New("room not found")
	ErrExtraNotFound   = New("extra not found")
	ErrItemNotFound    = New("minibar item not found")

	// A write would give one room two overlapping active stays.
	ErrRoomConflict = New("room already booked for overlapping dates")

	ErrDuplicateRoomCode = New("room code already exists")

	ErrInvalidInput            = New("invalid input")
	ErrDatabaseOperationFailed = New("database operation failed")
)
