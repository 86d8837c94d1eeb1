package comptype_test

import (
	"reflect"

	"github.com/oliverbestmann/comptype"
)

type StructA struct {
	comptype.Component[StructA]
}

type StructB struct {
	comptype.Component[StructB]
	Value int
}

type StructC struct {
	comptype.Component[StructC]
	A StructA
}

type Position struct {
	comptype.Component[Position]
	X, Y float64
}

type Velocity struct {
	comptype.Component[Velocity]
	X, Y float64
}

type Player struct {
	comptype.Component[Player]
}

type lowercase struct {
	comptype.Component[lowercase]
}

type hiddenState struct {
	tag  StructA
	tags [2]Player
}

type HiddenTag struct {
	comptype.Component[HiddenTag]
	state hiddenState
}

type HiddenData struct {
	comptype.Component[HiddenData]
	count int
}

func typesOf(values ...any) []reflect.Type {
	var types []reflect.Type
	for _, value := range values {
		types = append(types, reflect.TypeOf(value))
	}

	return types
}
