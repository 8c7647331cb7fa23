// Copyright (c) 2019-2020 The Dextro developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"reflect"

	"github.com/davecgh/go-spew/spew"
	"github.com/dextroproject/dextrod/chaincfg"
)

// fieldConfig renders single field values on one line.
var fieldConfig = spew.ConfigState{
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// fieldDiff is one exported parameter that differs between two networks.
type fieldDiff struct {
	Name string
	From string
	To   string
}

// diffParams returns the exported fields of to that differ from from, in
// declaration order.
func diffParams(from, to *chaincfg.Params) []fieldDiff {
	fromVal := reflect.ValueOf(from).Elem()
	toVal := reflect.ValueOf(to).Elem()
	typ := fromVal.Type()

	var diffs []fieldDiff
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}
		a := fromVal.Field(i).Interface()
		b := toVal.Field(i).Interface()
		if reflect.DeepEqual(a, b) {
			continue
		}
		diffs = append(diffs, fieldDiff{
			Name: field.Name,
			From: fieldConfig.Sprintf("%v", a),
			To:   fieldConfig.Sprintf("%v", b),
		})
	}
	return diffs
}
