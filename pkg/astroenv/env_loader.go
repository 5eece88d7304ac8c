package astroenv

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var durationType = reflect.TypeOf(time.Duration(0))

// Load fills cfg from the process environment using `env` struct tags.
// Each file in files is loaded first through godotenv; missing files are
// skipped and variables already set in the environment are never overridden.
// With no files given, ".env" in the working directory is tried.
//
// Tag format:
//
//	`env:"KEY"`          → required
//	`env:"KEY,default"`  → optional, default used when KEY is unset or empty
//
// Supported kinds: string, signed and unsigned ints, bool, floats,
// time.Duration and nested structs.
func Load(cfg any, files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("astroenv: loading %s: %w", f, err)
		}
	}

	v := reflect.ValueOf(cfg)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("astroenv: expected a pointer to a struct, got %T", cfg)
	}

	return fillStruct(v.Elem())
}

func fillStruct(v reflect.Value) error {
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		field := v.Field(i)
		sf := t.Field(i)

		if field.Kind() == reflect.Struct {
			if err := fillStruct(field); err != nil {
				return err
			}
			continue
		}

		tag := sf.Tag.Get("env")
		if tag == "" || !field.CanSet() {
			continue
		}

		key, def, hasDefault := splitTag(tag)

		raw := os.Getenv(key)
		if raw == "" {
			if !hasDefault {
				return fmt.Errorf("astroenv: missing required variable %q (field %s)", key, sf.Name)
			}
			raw = def
		}

		if err := assign(field, raw); err != nil {
			return fmt.Errorf("astroenv: %s (%s=%q): %w", sf.Name, key, raw, err)
		}
	}

	return nil
}

// splitTag separates "KEY,default" into its parts.
func splitTag(tag string) (key, def string, hasDefault bool) {
	key, def, hasDefault = strings.Cut(tag, ",")
	return strings.TrimSpace(key), strings.TrimSpace(def), hasDefault
}

func assign(field reflect.Value, raw string) error {
	if field.Type() == durationType {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return err
		}
		field.SetInt(int64(d))
		return nil
	}

	switch field.Kind() {
	case reflect.String:
		field.SetString(raw)

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(raw, 10, field.Type().Bits())
		if err != nil {
			return err
		}
		field.SetInt(n)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(raw, 10, field.Type().Bits())
		if err != nil {
			return err
		}
		field.SetUint(n)

	case reflect.Bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return err
		}
		field.SetBool(b)

	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(raw, field.Type().Bits())
		if err != nil {
			return err
		}
		field.SetFloat(f)

	default:
		return fmt.Errorf("unsupported kind %s", field.Kind())
	}

	return nil
}
