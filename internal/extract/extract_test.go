// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package extract

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/albertocavalcante/wasmbind/internal/model"
)

func warningKinds(ws []model.Warning) []model.WarningKind {
	var kinds []model.WarningKind
	for _, w := range ws {
		kinds = append(kinds, w.Kind)
	}
	return kinds
}

func TestRustExtract(t *testing.T) {
	tests := []struct {
		name      string
		src       string
		markers   []string
		want      []model.Signature
		wantKinds []model.WarningKind
	}{
		{
			name: "wasm_bindgen functions",
			src: `use wasm_bindgen::prelude::*;

#[wasm_bindgen]
pub fn add(a: i32, b: i32) -> i32 {
    a + b
}

#[wasm_bindgen]
pub fn greet(name: &str) -> String {
    format!("Hello, {}", name)
}
`,
			want: []model.Signature{
				{Name: "add", Params: []model.Param{{Name: "a", Type: "i32"}, {Name: "b", Type: "i32"}}, Return: "i32", Line: 4},
				{Name: "greet", Params: []model.Param{{Name: "name", Type: "&str"}}, Return: "String", Line: 9},
			},
		},
		{
			name: "unmarked functions are ignored",
			src: `fn helper(x: i32) -> i32 { x }

#[inline]
pub fn also_helper() {}

#[wasm_bindgen]
pub fn tick() {}
`,
			want: []model.Signature{
				{Name: "tick", Params: []model.Param{}, Line: 7},
			},
		},
		{
			name: "qualified marker path and arguments",
			src: `#[wasm_bindgen::prelude::wasm_bindgen(js_name = "scaleIt")]
pub fn scale(v: f64, by: f32) -> f64 { v * by as f64 }
`,
			want: []model.Signature{
				{Name: "scale", Params: []model.Param{{Name: "v", Type: "f64"}, {Name: "by", Type: "f32"}}, Return: "f64", Line: 2},
			},
		},
		{
			name: "no_mangle and comments between attribute and item",
			src: `#[no_mangle]
// exported for the host
/* keep */
pub extern "C" fn is_even(num: i32) -> i32 {
    (num % 2 == 0) as i32
}
`,
			want: []model.Signature{
				{Name: "is_even", Params: []model.Param{{Name: "num", Type: "i32"}}, Return: "i32", Line: 4},
			},
		},
		{
			name: "unsafe no_mangle attributes",
			src: `#[unsafe(no_mangle)]
pub extern "C" fn add(a: i32, b: i32) -> i32 {
    a + b
}

#[unsafe(no_mangle)]
pub extern "C" fn sub(a: i32, b: i32) -> i32 {
    a - b
}
`,
			want: []model.Signature{
				{Name: "add", Params: []model.Param{{Name: "a", Type: "i32"}, {Name: "b", Type: "i32"}}, Return: "i32", Line: 2},
				{Name: "sub", Params: []model.Param{{Name: "a", Type: "i32"}, {Name: "b", Type: "i32"}}, Return: "i32", Line: 7},
			},
		},
		{
			name: "unit return and lifetimes",
			src: `#[wasm_bindgen]
pub fn log<'a>(msg: &'a str) -> () {}
`,
			want: []model.Signature{
				{Name: "log", Params: []model.Param{{Name: "msg", Type: "&str"}}, Line: 2},
			},
		},
		{
			name: "mut binding is accepted",
			src: `#[wasm_bindgen]
pub fn bump(mut n: u32) -> u32 { n += 1; n }
`,
			want: []model.Signature{
				{Name: "bump", Params: []model.Param{{Name: "n", Type: "u32"}}, Return: "u32", Line: 2},
			},
		},
		{
			name: "one malformed and two good functions",
			src: `#[wasm_bindgen]
pub fn first(a: i32) -> i32 { a }

#[wasm_bindgen]
pub fn broken((x, y): (i32, i32)) -> i32 { x + y }

#[wasm_bindgen]
pub fn second(flag: bool) -> bool { !flag }
`,
			want: []model.Signature{
				{Name: "first", Params: []model.Param{{Name: "a", Type: "i32"}}, Return: "i32", Line: 2},
				{Name: "second", Params: []model.Param{{Name: "flag", Type: "bool"}}, Return: "bool", Line: 8},
			},
			wantKinds: []model.WarningKind{model.MalformedParameter},
		},
		{
			name: "wildcard parameter",
			src: `#[wasm_bindgen]
pub fn ignore(_: i32) {}
`,
			want:      []model.Signature{},
			wantKinds: []model.WarningKind{model.MalformedParameter},
		},
		{
			name: "nested modules",
			src: `mod outer {
    #[wasm_bindgen]
    pub fn inner_fn(x: u8) -> u8 { x }

    mod deeper {
        #[wasm_bindgen]
        pub fn deepest() -> bool { true }
    }
}
`,
			want: []model.Signature{
				{Name: "inner_fn", Params: []model.Param{{Name: "x", Type: "u8"}}, Return: "u8", Line: 3},
				{Name: "deepest", Params: []model.Param{}, Return: "bool", Line: 7},
			},
		},
		{
			name: "attribute does not carry over a struct",
			src: `#[wasm_bindgen]
pub struct Counter { n: u32 }

pub fn not_exported() {}
`,
			want: []model.Signature{},
		},
		{
			name: "duplicates keep the first",
			src: `#[wasm_bindgen]
pub fn dup(a: i32) {}

mod again {
    #[wasm_bindgen]
    pub fn dup(b: f64) {}
}
`,
			want: []model.Signature{
				{Name: "dup", Params: []model.Param{{Name: "a", Type: "i32"}}, Line: 2},
			},
			wantKinds: []model.WarningKind{model.DuplicateFunction},
		},
		{
			name:    "custom marker",
			markers: []string{"export"},
			src: `#[export]
fn one() {}

#[wasm_bindgen]
fn two() {}
`,
			want: []model.Signature{
				{Name: "one", Params: []model.Param{}, Line: 2},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := NewRust(tt.markers...).Extract(context.Background(), []byte(tt.src))
			if err != nil {
				t.Fatalf("Extract() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, res.Signatures); diff != "" {
				t.Errorf("Extract() signatures mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.wantKinds, warningKinds(res.Warnings)); diff != "" {
				t.Errorf("Extract() warnings mismatch (-want +got):\n%s\nwarnings: %v", diff, res.Warnings)
			}
		})
	}
}

func TestRustExtractSyntaxError(t *testing.T) {
	src := `#[wasm_bindgen]
pub fn good(a: i32) -> i32 { a }

pub fn broken( {
`
	res, err := NewRust().Extract(context.Background(), []byte(src))
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}

	var syntax int
	for _, w := range res.Warnings {
		if w.Kind == model.SyntaxError {
			syntax++
		}
	}
	if syntax != 1 {
		t.Errorf("got %d syntax-error warnings, want 1: %v", syntax, res.Warnings)
	}
	if len(res.Signatures) == 0 || res.Signatures[0].Name != "good" {
		t.Errorf("Extract() signatures = %v, want good to survive", res.Signatures)
	}
}

func TestUnwrapUnsafeAttributes(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{src: "#[unsafe(no_mangle)]", want: "#[       no_mangle ]"},
		{src: `#[ unsafe (link_section = ".x")]`, want: `#[         link_section = ".x" ]`},
		{src: "#[inline]\nfn f() {}", want: "#[inline]\nfn f() {}"},
		{src: "#[unsafe(no_mangle]\n", want: "#[unsafe(no_mangle]\n"},
	}
	for _, tt := range tests {
		if got := string(unwrapUnsafeAttributes([]byte(tt.src))); got != tt.want {
			t.Errorf("unwrapUnsafeAttributes(%q) = %q, want %q", tt.src, got, tt.want)
		}
	}
}

func TestRustExtractCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewRust().Extract(ctx, []byte("fn main() {}")); err == nil {
		t.Error("Extract() with cancelled context: want error")
	}
}

func TestAttributeName(t *testing.T) {
	tests := []struct {
		attr string
		want string
	}{
		{attr: "#[wasm_bindgen]", want: "wasm_bindgen"},
		{attr: "#[ wasm_bindgen ]", want: "wasm_bindgen"},
		{attr: "#[wasm_bindgen(constructor)]", want: "wasm_bindgen"},
		{attr: "#[wasm_bindgen::prelude::wasm_bindgen]", want: "wasm_bindgen"},
		{attr: "#[no_mangle]", want: "no_mangle"},
		{attr: "#[unsafe(no_mangle)]", want: "no_mangle"},
		{attr: "#[unsafe( no_mangle )]", want: "no_mangle"},
		{attr: `#[unsafe(export_name = "f")]`, want: "export_name"},
		{attr: "#[inline]", want: "inline"},
		{attr: `#[doc = "x"]`, want: "doc"},
	}

	for _, tt := range tests {
		t.Run(tt.attr, func(t *testing.T) {
			if got := attributeName(tt.attr); got != tt.want {
				t.Errorf("attributeName(%q) = %q, want %q", tt.attr, got, tt.want)
			}
		})
	}
}

func TestLeadingAttributes(t *testing.T) {
	got := leadingAttributes("#[unsafe(no_mangle)]\n#[inline] pub extern \"C\" fn f() {}")
	want := []string{"#[unsafe(no_mangle)]", "#[inline]"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("leadingAttributes() mismatch (-want +got):\n%s", diff)
	}

	if got := leadingAttributes("pub fn f() {}"); got != nil {
		t.Errorf("leadingAttributes() = %v, want nil", got)
	}
	if got := leadingAttributes("#[unterminated"); got != nil {
		t.Errorf("leadingAttributes() = %v, want nil", got)
	}
}

func TestCppExtract(t *testing.T) {
	tests := []struct {
		name      string
		src       string
		markers   []string
		want      []model.Signature
		wantKinds []model.WarningKind
	}{
		{
			name: "keepalive block",
			src: `#include <emscripten.h>

extern "C" {

    EMSCRIPTEN_KEEPALIVE
    int add(int a, int b) {
        return a + b;
    }

    EMSCRIPTEN_KEEPALIVE
    double multiply(double a, double b) {
        return a * b;
    }
}
`,
			want: []model.Signature{
				{Name: "add", Params: []model.Param{{Name: "a", Type: "int"}, {Name: "b", Type: "int"}}, Return: "int", Line: 6},
				{Name: "multiply", Params: []model.Param{{Name: "a", Type: "double"}, {Name: "b", Type: "double"}}, Return: "double", Line: 11},
			},
		},
		{
			name: "pointers and qualifiers",
			src: `EMSCRIPTEN_KEEPALIVE const char* greet(const char *name) { return name; }
EMSCRIPTEN_KEEPALIVE unsigned int count(char* buf, unsigned long len) { return 0; }
EMSCRIPTEN_KEEPALIVE const std::string& echo(const std::string &s) { return s; }
`,
			want: []model.Signature{
				{Name: "greet", Params: []model.Param{{Name: "name", Type: "const char*"}}, Return: "const char*", Line: 1},
				{Name: "count", Params: []model.Param{{Name: "buf", Type: "char*"}, {Name: "len", Type: "unsigned long"}}, Return: "unsigned int", Line: 2},
				{Name: "echo", Params: []model.Param{{Name: "s", Type: "const std::string&"}}, Return: "const std::string&", Line: 3},
			},
		},
		{
			name: "void return and void params",
			src: `EMSCRIPTEN_KEEPALIVE void reset(void) {}
EMSCRIPTEN_KEEPALIVE void* handle() { return 0; }
`,
			want: []model.Signature{
				{Name: "reset", Params: []model.Param{}, Line: 1},
				{Name: "handle", Params: []model.Param{}, Return: "void*", Line: 2},
			},
		},
		{
			name: "templated types",
			src: `EMSCRIPTEN_KEEPALIVE std::optional<int> find(std::map<int, int> m, int key) { return {}; }
`,
			want: []model.Signature{
				{
					Name:   "find",
					Params: []model.Param{{Name: "m", Type: "std::map<int,int>"}, {Name: "key", Type: "int"}},
					Return: "std::optional<int>",
					Line:   1,
				},
			},
		},
		{
			name: "one malformed and two good functions",
			src: `EMSCRIPTEN_KEEPALIVE int first(int a) { return a; }
EMSCRIPTEN_KEEPALIVE int broken(int) { return 0; }
EMSCRIPTEN_KEEPALIVE bool second(bool flag) { return !flag; }
`,
			want: []model.Signature{
				{Name: "first", Params: []model.Param{{Name: "a", Type: "int"}}, Return: "int", Line: 1},
				{Name: "second", Params: []model.Param{{Name: "flag", Type: "bool"}}, Return: "bool", Line: 3},
			},
			wantKinds: []model.WarningKind{model.MalformedParameter},
		},
		{
			name: "default values and arrays are malformed",
			src: `EMSCRIPTEN_KEEPALIVE int opt(int a = 3) { return a; }
EMSCRIPTEN_KEEPALIVE int sum(int xs[4]) { return 0; }
EMSCRIPTEN_KEEPALIVE int bare(unsigned int) { return 0; }
`,
			want: []model.Signature{},
			wantKinds: []model.WarningKind{
				model.MalformedParameter,
				model.MalformedParameter,
				model.MalformedParameter,
			},
		},
		{
			name: "unmarked functions are ignored",
			src: `int hidden(int a) { return a; }
EMSCRIPTEN_KEEPALIVE float half(float x) { return x / 2; }
`,
			want: []model.Signature{
				{Name: "half", Params: []model.Param{{Name: "x", Type: "float"}}, Return: "float", Line: 2},
			},
		},
		{
			name: "duplicate overloads keep the first",
			src: `EMSCRIPTEN_KEEPALIVE int twice(int a) { return 2 * a; }
EMSCRIPTEN_KEEPALIVE double twice(double a) { return 2 * a; }
`,
			want: []model.Signature{
				{Name: "twice", Params: []model.Param{{Name: "a", Type: "int"}}, Return: "int", Line: 1},
			},
			wantKinds: []model.WarningKind{model.DuplicateFunction},
		},
		{
			name: "function pointer parameter is malformed",
			src: `EMSCRIPTEN_KEEPALIVE void reg(void (*cb)(int), int x) {}
EMSCRIPTEN_KEEPALIVE int after(int x) { return x; }
`,
			want: []model.Signature{
				{Name: "after", Params: []model.Param{{Name: "x", Type: "int"}}, Return: "int", Line: 2},
			},
			wantKinds: []model.WarningKind{model.MalformedParameter},
		},
		{
			name:      "unclosed parameter list",
			src:       "EMSCRIPTEN_KEEPALIVE int open(int a\n",
			want:      []model.Signature{},
			wantKinds: []model.WarningKind{model.MalformedParameter},
		},
		{
			name: "markers in comments, directives and strings are ignored",
			src: `#define EMSCRIPTEN_KEEPALIVE __attribute__((used))
int plain(int a) { return a; }
// EMSCRIPTEN_KEEPALIVE int commented(int a) { return a; }
/* EMSCRIPTEN_KEEPALIVE
int blocked(int a) { return a; } */
const char* note = "EMSCRIPTEN_KEEPALIVE int quoted(int a)";
EMSCRIPTEN_KEEPALIVE int real(int a) { return a; }
`,
			want: []model.Signature{
				{Name: "real", Params: []model.Param{{Name: "a", Type: "int"}}, Return: "int", Line: 7},
			},
		},
		{
			name:    "custom markers",
			markers: []string{"API", "EXPORT"},
			src: `API int a() { return 1; }
EXPORT int b() { return 2; }
EMSCRIPTEN_KEEPALIVE int c() { return 3; }
`,
			want: []model.Signature{
				{Name: "a", Params: []model.Param{}, Return: "int", Line: 1},
				{Name: "b", Params: []model.Param{}, Return: "int", Line: 2},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := NewCpp(tt.markers...).Extract(context.Background(), []byte(tt.src))
			if err != nil {
				t.Fatalf("Extract() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, res.Signatures); diff != "" {
				t.Errorf("Extract() signatures mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.wantKinds, warningKinds(res.Warnings)); diff != "" {
				t.Errorf("Extract() warnings mismatch (-want +got):\n%s\nwarnings: %v", diff, res.Warnings)
			}
		})
	}
}

func TestParseCppParam(t *testing.T) {
	tests := []struct {
		raw    string
		want   model.Param
		wantOK bool
	}{
		{raw: "int a", want: model.Param{Name: "a", Type: "int"}, wantOK: true},
		{raw: " const char *s ", want: model.Param{Name: "s", Type: "const char*"}, wantOK: true},
		{raw: "int& out", want: model.Param{Name: "out", Type: "int&"}, wantOK: true},
		{raw: "std::string name", want: model.Param{Name: "name", Type: "std::string"}, wantOK: true},
		{raw: "int"},
		{raw: "std::string"},
		{raw: "const char*"},
		{raw: "..."},
		{raw: "int x = 1"},
		{raw: "int a[2]"},
		{raw: "void (*cb)(int)"},
		{raw: ""},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := parseCppParam(tt.raw)
			if ok != tt.wantOK {
				t.Fatalf("parseCppParam(%q) ok = %v, want %v", tt.raw, ok, tt.wantOK)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("parseCppParam(%q) mismatch (-want +got):\n%s", tt.raw, diff)
			}
		})
	}
}

func TestMaskNonCode(t *testing.T) {
	src := "#include <a.h>\nint x; // EXPORT\nconst char* s = \"EXPORT\"; /* a\nb */ int y;\n"
	want := "              \nint x;          \nconst char* s = \"      \";     \n     int y;\n"
	if got := string(maskNonCode([]byte(src))); got != want {
		t.Errorf("maskNonCode() = %q, want %q", got, want)
	}
}

func TestExtractorsShareShape(t *testing.T) {
	var extractors = []Extractor{NewRust(), NewCpp()}
	want := []string{"rust", "cpp"}
	for i, e := range extractors {
		if got := e.Language(); got != want[i] {
			t.Errorf("Language() = %q, want %q", got, want[i])
		}
		res, err := e.Extract(context.Background(), []byte{})
		if err != nil {
			t.Fatalf("%s: Extract(nil) error = %v", e.Language(), err)
		}
		if res.Signatures == nil || len(res.Signatures) != 0 {
			t.Errorf("%s: Extract(nil) signatures = %#v, want empty", e.Language(), res.Signatures)
		}
	}
}
