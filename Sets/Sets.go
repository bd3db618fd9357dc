package Sets

// Set of unique elements. Implementations are single-owner structures:
// concurrent use, and mutation while a Range is in progress, are undefined.
type Set[E any] interface {
	Put(E) error
	Has(E) (bool, error)
	Remove(E) error
	Clear()
	Size() uint
	Take() E
	Range(func(E) bool)
}

type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "invalid configuration: " + e.Reason
}

// ZeroValueError is returned when the zero value of the element type is passed
// to any operation; it stands for "no value" and can never be a member.
type ZeroValueError struct {
}

func (e *ZeroValueError) Error() string {
	return "zero value cannot be a member"
}

type DuplicateError struct {
}

func (e *DuplicateError) Error() string {
	return "element is already present"
}

type NotFoundError struct {
}

func (e *NotFoundError) Error() string {
	return "element is not present"
}

// FullError is returned when linear probing finishes a full lap without
// finding an empty slot. It cannot happen unless the growth check was skipped.
type FullError struct {
}

func (e *FullError) Error() string {
	return "no empty slot in a full probe lap"
}
