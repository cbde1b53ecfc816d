package words

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrInvalidArgument = errors.New("words: invalid argument")
)

type ArgumentError struct {
	Name     string
	Value    any
	Expected string
}

func (err *ArgumentError) Error() string {
	return fmt.Sprintf("words: unexpected %s %#v, expected %s", err.Name, err.Value, err.Expected)
}

func (err *ArgumentError) Unwrap() error {
	return ErrInvalidArgument
}
