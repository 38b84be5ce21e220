package excelify

import (
	"reflect"

	"github.com/ukaji3/excelify-go/pkg/excelify/models"
	"github.com/ukaji3/excelify-go/pkg/excelify/namespace"
)

// Namespace is the read-only view of session variables an export works on.
type Namespace interface {
	// Get returns the value bound to name.
	Get(name string) (any, bool)
	// Items returns a snapshot of every binding.
	Items() []namespace.Entry
}

// Resolve looks up name in ns.
func Resolve(name string, ns Namespace) (any, error) {
	v, ok := ns.Get(name)
	if !ok {
		return nil, &UndefinedNameError{Name: name}
	}
	return v, nil
}

// Check returns v as a Frame, or an UnsupportedTypeError naming its kind.
func Check(name string, v any) (models.Frame, error) {
	frame, ok := v.(models.Frame)
	if !ok || isNilPointer(v) {
		return nil, &UnsupportedTypeError{Name: name, Kind: models.KindOf(v)}
	}
	return frame, nil
}

func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
