package assert

import (
	"fmt"
	"reflect"
)

func IsNonPointerType(t reflect.Type) {
	if t.Kind() == reflect.Pointer {
		panic(fmt.Sprintf("expected non pointer type, got %s", t))
	}
}

func IsNamedType(t reflect.Type) {
	if t.Name() == "" {
		panic(fmt.Sprintf("expected named type, got %s", t))
	}
}

func NotNil(value any, what string) {
	if value == nil {
		panic(fmt.Sprintf("%s must not be nil", what))
	}
}
