package bytecast

import (
	"fmt"
	"reflect"

	"github.com/mochidev/Bytes/ierrors"
	"github.com/mochidev/Bytes/syncutils"
)

// layoutCache holds the result of the layout walk per type, so reflection
// only runs once per type for the lifetime of the process.
var (
	layoutCacheMutex syncutils.RWMutex
	layoutCache      = make(map[reflect.Type]error)
)

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// IsFixedLayout reports whether values of type T occupy a fixed number of
// bytes that fully describe the value, which is what makes a type eligible
// for casting. Types that refer to memory outside themselves (pointers,
// slices, strings, maps, channels, functions, interfaces) are not.
func IsFixedLayout[T any]() bool {
	return checkFixedLayout(typeOf[T]()) == nil
}

func checkFixedLayout(t reflect.Type) error {
	layoutCacheMutex.RLock()
	err, cached := layoutCache[t]
	layoutCacheMutex.RUnlock()
	if cached {
		return err
	}

	if walkErr := walkLayout(t, ""); walkErr != nil {
		err = ierrors.Wrapf(walkErr, "type %s is not fixed-layout", t.String())
	}

	layoutCacheMutex.Lock()
	layoutCache[t] = err
	layoutCacheMutex.Unlock()

	return err
}

func mustFixedLayout(t reflect.Type) {
	if err := checkFixedLayout(t); err != nil {
		panic(err)
	}
}

func walkLayout(t reflect.Type, path string) error {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return nil

	case reflect.Array:
		return walkLayout(t.Elem(), path+"[]")

	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			if err := walkLayout(field.Type, joinFieldPath(path, field.Name)); err != nil {
				return err
			}
		}

		return nil

	default:
		return ierrors.New(describeLayoutViolation(t, path))
	}
}

func joinFieldPath(path string, fieldName string) string {
	if path == "" {
		return fieldName
	}

	return path + "." + fieldName
}

func describeLayoutViolation(t reflect.Type, path string) string {
	if path == "" {
		return fmt.Sprintf("kind %s refers to memory outside the value", t.Kind())
	}

	return fmt.Sprintf("field %s of kind %s refers to memory outside the value", path, t.Kind())
}
