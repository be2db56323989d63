package envstruct_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mvirtane/fitplan/internal/envstruct"
)

func lookupEnvFromMap(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		val, ok := env[key]
		return val, ok
	}
}

func TestPopulate(t *testing.T) {
	type config struct {
		Addr    string   `env:"TEST_ADDR" envDefault:"localhost:0"`
		DBURL   string   `env:"TEST_DB_URL"`
		Origins []string `env:"TEST_ORIGINS" envDefault:"*"`
	}

	tests := []struct {
		name    string
		env     map[string]string
		want    config
		wantErr bool
	}{
		{
			name: "all variables set",
			env: map[string]string{
				"TEST_ADDR":    "localhost:8080",
				"TEST_DB_URL":  ":memory:",
				"TEST_ORIGINS": "https://a.example, https://b.example",
			},
			want: config{
				Addr:    "localhost:8080",
				DBURL:   ":memory:",
				Origins: []string{"https://a.example", "https://b.example"},
			},
			wantErr: false,
		},
		{
			name: "defaults apply",
			env: map[string]string{
				"TEST_DB_URL": "./app.sqlite3",
			},
			want: config{
				Addr:    "localhost:0",
				DBURL:   "./app.sqlite3",
				Origins: []string{"*"},
			},
			wantErr: false,
		},
		{
			name:    "missing required variable",
			env:     map[string]string{},
			want:    config{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cfg config
			err := envstruct.Populate(&cfg, lookupEnvFromMap(tt.env))
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Populate: %v", err)
			}
			if diff := cmp.Diff(tt.want, cfg); diff != "" {
				t.Errorf("Populate() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPopulateRejectsNonStruct(t *testing.T) {
	var s string
	if err := envstruct.Populate(&s, lookupEnvFromMap(nil)); err == nil {
		t.Fatal("expected error for non-struct value")
	}
	if err := envstruct.Populate(s, lookupEnvFromMap(nil)); err == nil {
		t.Fatal("expected error for non-pointer value")
	}
}

func TestPopulateRejectsUnsupportedFieldType(t *testing.T) {
	type config struct {
		Port int `env:"TEST_PORT"`
	}
	var cfg config
	err := envstruct.Populate(&cfg, lookupEnvFromMap(map[string]string{"TEST_PORT": "8080"}))
	if err == nil {
		t.Fatal("expected error for unsupported field type")
	}
}
