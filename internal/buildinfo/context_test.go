package buildinfo

import (
	"testing"
)

func TestContext_Version(t *testing.T) {
	tests := []struct {
		name string
		ctx  *Context
		want string
	}{
		{
			name: "nil context",
			ctx:  nil,
			want: UnknownValue,
		},
		{
			name: "empty version",
			ctx:  NewContext("", "2023-01-01"),
			want: UnknownValue,
		},
		{
			name: "valid version",
			ctx:  NewContext("1.0.0", "2023-01-01"),
			want: "1.0.0",
		},
		{
			name: "version with pre-release tag",
			ctx:  NewContext("1.0.0-beta.1", "2023-01-01"),
			want: "1.0.0-beta.1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.ctx.Version()
			if got != tt.want {
				t.Errorf("Context.Version() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestContext_BuildDate(t *testing.T) {
	tests := []struct {
		name string
		ctx  *Context
		want string
	}{
		{
			name: "nil context",
			ctx:  nil,
			want: UnknownValue,
		},
		{
			name: "empty build date",
			ctx:  NewContext("1.0.0", ""),
			want: UnknownValue,
		},
		{
			name: "valid build date",
			ctx:  NewContext("1.0.0", "2023-06-15T10:30:00Z"),
			want: "2023-06-15T10:30:00Z",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.ctx.BuildDate()
			if got != tt.want {
				t.Errorf("Context.BuildDate() = %v, want %v", got, tt.want)
			}
		})
	}
}
