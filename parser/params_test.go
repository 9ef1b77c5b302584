// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: parser/params_test.go

package parser

import (
	"reflect"
	"testing"
)

func TestParseParamsEmpty(t *testing.T) {
	if got := parseParams(nil, 16); got != nil {
		t.Fatalf("got %+v", got)
	}
}

func TestParseParamsSemicolon(t *testing.T) {
	got := parseParams([]byte("10;20"), 16)
	want := []Param{{10, SepSemicolon}, {20, SepNone}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestParseParamsColon(t *testing.T) {
	got := parseParams([]byte("4:3"), 16)
	want := []Param{{4, SepColon}, {3, SepNone}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestParseParamsEmptySlotIsZero(t *testing.T) {
	got := parseParams([]byte(";5"), 16)
	want := []Param{{0, SepSemicolon}, {5, SepNone}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestParseParamsOverflowClamps(t *testing.T) {
	got := parseParams([]byte("999999999"), 16)
	if len(got) != 1 || got[0].Value != maxParamValue {
		t.Fatalf("got %+v", got)
	}
}

func TestParseParamsMaxParamsTruncates(t *testing.T) {
	got := parseParams([]byte("1;2;3;4"), 2)
	if len(got) != 2 || got[0].Value != 1 || got[1].Value != 2 {
		t.Fatalf("got %+v", got)
	}
}

func TestParamDefault1(t *testing.T) {
	params := []Param{{0, SepNone}}
	if v := paramDefault1(params, 0, 7); v != 7 {
		t.Errorf("zero-as-default: got %d, want 7", v)
	}
	params2 := []Param{{3, SepNone}}
	if v := paramDefault1(params2, 0, 7); v != 3 {
		t.Errorf("present value: got %d, want 3", v)
	}
	if v := paramDefault1(nil, 0, 7); v != 7 {
		t.Errorf("absent: got %d, want 7", v)
	}
}

func TestParamOrAbsent(t *testing.T) {
	params := []Param{{0, SepNone}}
	if v, ok := paramOrAbsent(params, 0, 9); v != 0 || !ok {
		t.Errorf("got (%d,%v), want (0,true)", v, ok)
	}
	if v, ok := paramOrAbsent(nil, 0, 9); v != 9 || ok {
		t.Errorf("got (%d,%v), want (9,false)", v, ok)
	}
}

func TestIntValues(t *testing.T) {
	params := []Param{{1, SepSemicolon}, {2, SepNone}}
	got := intValues(params)
	want := []int{1, 2}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	if intValues(nil) != nil {
		t.Error("expected nil for empty input")
	}
}
