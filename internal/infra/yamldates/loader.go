// Package yamldates reads named date lists from YAML files:
//
//	name: Chapter anniversaries
//	date_class: 0        # optional default for every entry
//	dates:
//	  - name: founding
//	    date: 2016-06-23
//	    class: 1           # optional, overrides date_class
package yamldates

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aalvaropc/imperial/internal/domain"
	"github.com/aalvaropc/imperial/internal/ports"
	"gopkg.in/yaml.v3"
)

type Loader struct {
	datesDir string
}

func NewLoader(opts ...Option) *Loader {
	l := &Loader{datesDir: "dates"}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

type Option func(*Loader)

func WithDatesDir(dir string) Option {
	return func(l *Loader) {
		if strings.TrimSpace(dir) != "" {
			l.datesDir = dir
		}
	}
}

var (
	_ ports.DateListLoader  = (*Loader)(nil)
	_ ports.DateListCatalog = (*Loader)(nil)
)

func (l *Loader) LoadDateList(path string) (domain.DateList, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.DateList{}, &domain.OpError{
			Op:   "yamldates.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var yl yamlDateList
	if err := yaml.Unmarshal(b, &yl); err != nil {
		return domain.DateList{}, &domain.OpError{
			Op:   "yamldates.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return mapAndValidate(path, yl)
}

// ListDateLists returns the .yaml/.yml files of the dates directory sorted
// by list name.
func (l *Loader) ListDateLists(root string) ([]domain.DateListRef, error) {
	dir := filepath.Join(root, l.datesDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "yamldates.list",
			Kind: domain.KindNotFound,
			Path: dir,
			Err:  err,
		}
	}

	var refs []domain.DateListRef
	for _, e := range entries {
		if e.IsDir() || !hasYAMLExt(e.Name()) {
			continue
		}

		p := filepath.Join(dir, e.Name())
		n, _ := readListName(p)
		if strings.TrimSpace(n) == "" {
			n = strings.TrimSuffix(e.Name(), filepath.Ext(e.Name()))
		}

		refs = append(refs, domain.DateListRef{Name: n, Path: p})
	}

	sort.Slice(refs, func(i, j int) bool { return refs[i].Name < refs[j].Name })
	return refs, nil
}

func hasYAMLExt(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".yaml" || ext == ".yml"
}

func readListName(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	var v struct {
		Name string `yaml:"name"`
	}
	if err := yaml.Unmarshal(b, &v); err != nil {
		return "", err
	}
	return v.Name, nil
}

type yamlDateList struct {
	Name      string      `yaml:"name"`
	DateClass *string     `yaml:"date_class"`
	Dates     []yamlEntry `yaml:"dates"`
}

type yamlEntry struct {
	Name  string  `yaml:"name"`
	Date  string  `yaml:"date"`
	Class *string `yaml:"class"`
}

func mapAndValidate(path string, yl yamlDateList) (domain.DateList, error) {
	if strings.TrimSpace(yl.Name) == "" {
		yl.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	defaultClass := domain.MinDateClass
	if yl.DateClass != nil {
		c, err := domain.ParseDateClass(strings.TrimSpace(*yl.DateClass))
		if err != nil {
			return domain.DateList{}, invalidField(path, "date_class", err)
		}
		defaultClass = c
	}

	list := domain.DateList{
		Name:    yl.Name,
		Entries: make([]domain.DateEntry, 0, len(yl.Dates)),
	}

	for i, e := range yl.Dates {
		fieldPrefix := fmt.Sprintf("dates[%d]", i)

		if strings.TrimSpace(e.Date) == "" {
			return domain.DateList{}, invalidField(path, fieldPrefix+".date", errors.New("date is required"))
		}
		d, err := domain.ParseCalendarDate(e.Date)
		if err != nil {
			return domain.DateList{}, invalidField(path, fieldPrefix+".date", err)
		}

		class := defaultClass
		if e.Class != nil {
			if class, err = domain.ParseDateClass(strings.TrimSpace(*e.Class)); err != nil {
				return domain.DateList{}, invalidField(path, fieldPrefix+".class", err)
			}
		}

		name := strings.TrimSpace(e.Name)
		if name == "" {
			name = d.String()
		}

		list.Entries = append(list.Entries, domain.DateEntry{Name: name, Date: d, DateClass: class})
	}

	return list, nil
}

func invalidField(path, field string, err error) error {
	return &domain.OpError{
		Op:   "yamldates.validate",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %w", field, err),
	}
}
