package usecase

import (
	"fmt"
	"path"
	"strings"

	"github.com/shandysiswandi/gocompare/internal/compare/entity"
	"github.com/shandysiswandi/gocompare/internal/pkg/pkgerror"
)

const (
	fieldSource   = "source_file_error"
	fieldCompared = "compared_file_error"
)

// validate checks both payloads before anything is written and returns their
// base names. Missing files are reported together, then extensions per file,
// then name collisions. Originals may not take a name the sort or diff stages
// write into the same folder.
func (u *Usecase) validate(in UploadInput) (string, string, error) {
	srcName := baseName(in.Source)
	cmpName := baseName(in.Compared)

	missing := map[string]string{}
	if srcName == "" {
		missing[fieldSource] = "source file is required"
	}
	if cmpName == "" {
		missing[fieldCompared] = "compared file is required"
	}
	if len(missing) > 0 {
		return "", "", pkgerror.NewValidation(pkgerror.CodeInvalidInput, missing)
	}

	format := map[string]string{}
	if !u.hasExtension(srcName) {
		format[fieldSource] = fmt.Sprintf("source file must be a .%s file", u.ext)
	}
	if !u.hasExtension(cmpName) {
		format[fieldCompared] = fmt.Sprintf("compared file must be a .%s file", u.ext)
	}
	if len(format) > 0 {
		return "", "", pkgerror.NewValidation(pkgerror.CodeInvalidFormat, format)
	}

	if srcName == cmpName {
		return "", "", pkgerror.NewValidation(pkgerror.CodeInvalidInput, map[string]string{
			fieldCompared: "compared file must not have the same name as the source file",
		})
	}

	reserved := map[string]string{}
	if u.isDerivedName(srcName) {
		reserved[fieldSource] = "source file name is reserved for generated files"
	}
	if u.isDerivedName(cmpName) {
		reserved[fieldCompared] = "compared file name is reserved for generated files"
	}
	if len(reserved) > 0 {
		return "", "", pkgerror.NewValidation(pkgerror.CodeInvalidInput, reserved)
	}

	return srcName, cmpName, nil
}

// baseName strips any client supplied directories, including Windows ones.
func baseName(f *File) string {
	if f == nil {
		return ""
	}

	name := strings.TrimSpace(strings.ReplaceAll(f.Name, `\`, "/"))
	if name == "" {
		return ""
	}

	name = path.Base(name)
	if name == "." || name == "/" || name == ".." {
		return ""
	}

	return name
}

func (u *Usecase) hasExtension(name string) bool {
	return strings.EqualFold(strings.TrimPrefix(path.Ext(name), "."), u.ext)
}

func (u *Usecase) isDerivedName(name string) bool {
	return strings.HasPrefix(strings.ToLower(name), entity.SortedPrefix) ||
		strings.EqualFold(name, entity.DifferenceName(u.ext))
}
