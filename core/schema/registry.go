package schema

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"
)

// Oracle answers field-existence questions for registered entity types.
type Oracle interface {
	FieldExists(entityType, field string) bool
}

// Registry is a startup-built catalog of entity schemas. Entities are
// registered once during wiring by reflecting over a prototype struct;
// lookups afterwards are plain map reads, no per-request reflection.
type Registry struct {
	mu       sync.RWMutex
	entities map[string]map[string]bool
}

func NewRegistry() *Registry {
	return &Registry{entities: map[string]map[string]bool{}}
}

// Register records the queryable fields of an entity type under name.
// Field names follow the json tag when present, otherwise the lower-camel
// form of the Go field name. Anonymous embedded structs are flattened.
func (r *Registry) Register(name string, prototype interface{}) error {
	typ := reflect.TypeOf(prototype)
	for typ != nil && typ.Kind() == reflect.Ptr {
		typ = typ.Elem()
	}
	if typ == nil || typ.Kind() != reflect.Struct {
		return fmt.Errorf("entity %q: prototype must be a struct, got %v", name, reflect.TypeOf(prototype))
	}

	fields := map[string]bool{}
	collectFields(typ, fields)

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.entities[name]; exists {
		return fmt.Errorf("entity %q is already registered", name)
	}
	r.entities[name] = fields
	return nil
}

// MustRegister is Register for wiring paths where a failure is a
// configuration bug.
func (r *Registry) MustRegister(name string, prototype interface{}) {
	if err := r.Register(name, prototype); err != nil {
		panic(err)
	}
}

// Has reports whether an entity type is registered.
func (r *Registry) Has(entityType string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.entities[entityType]
	return ok
}

// FieldExists reports whether field is a property of entityType. Unknown
// entity types simply report false; route wiring validates entity names up
// front so that case never reaches request handling.
func (r *Registry) FieldExists(entityType, field string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fields, ok := r.entities[entityType]
	if !ok {
		return false
	}
	return fields[field]
}

// Fields returns the registered field names of entityType, unordered.
func (r *Registry) Fields(entityType string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fields, ok := r.entities[entityType]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	return names
}

func collectFields(typ reflect.Type, into map[string]bool) {
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if field.PkgPath != "" {
			continue
		}
		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			collectFields(field.Type, into)
			continue
		}
		name := fieldName(field)
		if name == "" {
			continue
		}
		into[name] = true
	}
}

func fieldName(field reflect.StructField) string {
	tag := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if tag == "-" {
		return ""
	}
	if tag != "" {
		return tag
	}
	return lowerFirst(field.Name)
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToLower(r)) + s[size:]
}
