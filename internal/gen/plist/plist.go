// Package plist generates property list files such as Info.plist.
package plist

import (
	"math"
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"github.com/gosimple/slug"

	"github.com/tacogips/repogen/internal/buildsettings"
	"github.com/tacogips/repogen/internal/gen"
	"github.com/tacogips/repogen/internal/text"
	"github.com/tacogips/repogen/internal/textfile"
)

// Extension is appended to the caller supplied name.
const Extension = ".plist"

const doctype = `DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd"`

// File is a flat dictionary property list.
type File struct {
	gen.Options

	Entries *buildsettings.Settings
}

// New returns an empty property list.
func New(opts gen.Options) *File {
	return &File{Options: opts, Entries: buildsettings.New()}
}

// BundleIdentifier joins prefix and a slug of the product name, e.g.
// "com.example" and "My Kit" give "com.example.my-kit".
func BundleIdentifier(prefix, productName string) (string, error) {
	s := slug.Make(productName)
	if s == "" {
		return "", textfile.InvalidParametersError("plist.product_name", "must contain letters or digits")
	}
	prefix = strings.Trim(strings.TrimSpace(prefix), ".")
	if prefix == "" {
		return s, nil
	}
	return prefix + "." + s, nil
}

// ForFramework is the Info.plist preset for a framework target.
func ForFramework(opts gen.Options, bundlePrefix, productName, version string) (*File, error) {
	if gen.Blank(version) {
		return nil, textfile.InvalidParametersError("plist.version", "must not be blank")
	}
	id, err := BundleIdentifier(bundlePrefix, productName)
	if err != nil {
		return nil, err
	}
	f := New(opts)
	f.Set("CFBundleDevelopmentRegion", buildsettings.String("$(DEVELOPMENT_LANGUAGE)")).
		Set("CFBundleExecutable", buildsettings.String("$(EXECUTABLE_NAME)")).
		Set("CFBundleIdentifier", buildsettings.String(id)).
		Set("CFBundleInfoDictionaryVersion", buildsettings.String("6.0")).
		Set("CFBundleName", buildsettings.String("$(PRODUCT_NAME)")).
		Set("CFBundlePackageType", buildsettings.String("FMWK")).
		Set("CFBundleShortVersionString", buildsettings.String(version)).
		Set("CFBundleVersion", buildsettings.String("$(CURRENT_PROJECT_VERSION)")).
		Set("NSPrincipalClass", buildsettings.String(""))
	return f, nil
}

// Set stores an entry, replacing any previous value.
func (f *File) Set(key string, v buildsettings.Value) *File {
	f.Entries.Set(key, v)
	return f
}

// Extension implements textfile.NamedFile.
func (f *File) Extension() string {
	return Extension
}

// Document builds the XML document. Keys are written in sorted order.
func (f *File) Document() *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	doc.CreateDirective(doctype)
	root := doc.CreateElement("plist")
	root.CreateAttr("version", "1.0")
	dict := root.CreateElement("dict")
	for _, key := range f.Entries.Keys() {
		v, _ := f.Entries.Get(key)
		dict.CreateElement("key").SetText(key)
		appendValue(dict, v)
	}
	return doc
}

func appendValue(parent *etree.Element, v buildsettings.Value) {
	switch v.Kind() {
	case buildsettings.KindBool:
		b, _ := v.Flag()
		if b {
			parent.CreateElement("true")
		} else {
			parent.CreateElement("false")
		}
	case buildsettings.KindNumber:
		n, _ := v.Num()
		if n == math.Trunc(n) && math.Abs(n) < 1e15 {
			parent.CreateElement("integer").SetText(strconv.FormatInt(int64(n), 10))
		} else {
			parent.CreateElement("real").SetText(strconv.FormatFloat(n, 'f', -1, 64))
		}
	case buildsettings.KindList:
		items, _ := v.Items()
		arr := parent.CreateElement("array")
		for _, item := range items {
			arr.CreateElement("string").SetText(item)
		}
	default:
		s, _ := v.Str()
		parent.CreateElement("string").SetText(s)
	}
}

// Content implements textfile.Model. Elements are indented with the
// configured unit.
func (f *File) Content() text.IndentedText {
	doc := f.Document()
	if unit := f.Unit(); strings.Trim(unit, " ") == "" {
		doc.Indent(len(unit))
	} else {
		doc.IndentTabs()
	}
	out, err := doc.WriteToString()
	if err != nil {
		panic("plist: write: " + err.Error())
	}
	return f.Buffer().Line(strings.TrimRight(out, "\n")).Text()
}
