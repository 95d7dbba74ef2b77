// Package license generates LICENSE files.
package license

import (
	"bytes"
	"sort"
	"strings"
	"text/template"

	sprig "github.com/go-task/slim-sprig/v3"

	"github.com/tacogips/repogen/internal/gen"
	"github.com/tacogips/repogen/internal/text"
	"github.com/tacogips/repogen/internal/textfile"
)

// FileName is the intrinsic name of the generated file.
const FileName = "LICENSE"

const mitTmpl = `MIT License

Copyright (c) {{ .Year }} {{ .Holder | trim }}

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in all
copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
SOFTWARE.`

const iscTmpl = `ISC License

Copyright (c) {{ .Year }} {{ .Holder | trim }}

Permission to use, copy, modify, and/or distribute this software for any
purpose with or without fee is hereby granted, provided that the above
copyright notice and this permission notice appear in all copies.

THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.`

const apacheTmpl = `Copyright {{ .Year }} {{ .Holder | trim }}

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

{{ indent 4 "http://www.apache.org/licenses/LICENSE-2.0" }}

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.`

var templates = map[string]*template.Template{
	"MIT":        parse("MIT", mitTmpl),
	"ISC":        parse("ISC", iscTmpl),
	"Apache-2.0": parse("Apache-2.0", apacheTmpl),
}

func parse(name, body string) *template.Template {
	return template.Must(template.New(name).Funcs(sprig.TxtFuncMap()).Parse(body))
}

// Kinds returns the supported license identifiers.
func Kinds() []string {
	kinds := make([]string, 0, len(templates))
	for k := range templates {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

// Values are interpolated into the license template.
type Values struct {
	Year   int
	Holder string
}

// License is a rendered license text.
type License struct {
	gen.Options

	kind string
	body string
}

// New renders the license kind for holder. A blank holder, a non-positive
// year or an unknown kind is an invalid parameters error.
func New(opts gen.Options, kind, holder string, year int) (*License, error) {
	tmpl, ok := lookup(kind)
	if !ok {
		return nil, textfile.InvalidParametersError("license.kind",
			"unsupported license "+kind+" (supported: "+strings.Join(Kinds(), ", ")+")")
	}
	if gen.Blank(holder) {
		return nil, textfile.InvalidParametersError("license.holder", "must not be blank")
	}
	if year <= 0 {
		return nil, textfile.InvalidParametersError("license.year", "must be positive")
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, Values{Year: year, Holder: holder}); err != nil {
		return nil, textfile.InvalidParametersError("license", err.Error())
	}
	return &License{Options: opts, kind: tmpl.Name(), body: buf.String()}, nil
}

func lookup(kind string) (*template.Template, bool) {
	for k, t := range templates {
		if strings.EqualFold(k, strings.TrimSpace(kind)) {
			return t, true
		}
	}
	return nil, false
}

// Kind returns the canonical license identifier.
func (l *License) Kind() string {
	return l.kind
}

// FileName implements textfile.FixedNameFile.
func (l *License) FileName() string {
	return FileName
}

// Content implements textfile.Model.
func (l *License) Content() text.IndentedText {
	return l.Buffer().Line(l.body).Text()
}
