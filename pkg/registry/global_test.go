package registry

import (
	"testing"

	"github.com/arthur-debert/catcher/pkg/errors"
	"github.com/arthur-debert/catcher/pkg/exc"
)

func TestGlobalRegistry(t *testing.T) {
	Reset()
	defer Reset()

	if Default().Count() != 0 {
		t.Fatalf("default registry not empty after Reset()")
	}

	if err := Register("IOError", resultOf("io")); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if err := RegisterCatcher(For("NetError", resultOf("net"))); err != nil {
		t.Fatalf("RegisterCatcher() error = %v", err)
	}

	result, err := Handle(exc.New("NetError", "timeout"))
	if err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
	if result != "net" {
		t.Errorf("Handle() = %v, want net", result)
	}

	Reset()

	if _, err := Handle(exc.New("IOError", "x")); !errors.IsErrorCode(err, errors.ErrUnmatched) {
		t.Errorf("Handle() after Reset() should return ErrUnmatched, got %v", err)
	}
}
