package envfilter

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func p(s string) string {
	return filepath.FromSlash(s)
}

func TestSegments(t *testing.T) {
	root := p("/")

	tests := []struct {
		name string
		path string
		want []string
	}{
		{"filesystem root", "/", []string{root}},
		{"one level", "/migrations", []string{"migrations", root}},
		{"nested", "/migrations/v1.0/_dev", []string{"_dev", "v1.0", "migrations", root}},
		{"trailing separator", "/migrations/v1.0/", []string{"v1.0", "migrations", root}},
		{"unclean", "/migrations/./v1.0/../v2.0", []string{"v2.0", "migrations", root}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Segments(p(tt.path)))
		})
	}
}

func TestSegments_DoesNotTouchFilesystem(t *testing.T) {
	got := Segments(p("/definitely/not/a/real/dir-8f1c2"))
	assert.Equal(t, []string{"dir-8f1c2", "real", "a", "not", "definitely", p("/")}, got)
}

func TestRelativeExtraSegments(t *testing.T) {
	tests := []struct {
		name string
		root string
		file string
		want []string
	}{
		{"directly under root", "/migrations", "/migrations/a.sql", nil},
		{"one level", "/migrations", "/migrations/v1.0/a.sql", []string{"v1.0"}},
		{"leaf first", "/migrations", "/migrations/v1.0/_dev/a.sql", []string{"_dev", "v1.0"}},
		{"transaction stripped", "/migrations", "/migrations/v1.0/_transaction/_dev/a.sql", []string{"_dev", "v1.0"}},
		{"transaction stripped case-insensitive", "/migrations", "/migrations/v1.0/_TRANSACTION/a.sql", []string{"v1.0"}},
		{"bare transaction stripped", "/migrations", "/migrations/v1.0/transaction/a.sql", []string{"v1.0"}},
		{"root deeper than file", "/migrations/v1.0/_dev", "/migrations/a.sql", nil},
		{"deep root", "/srv/db/migrations", "/srv/db/migrations/v2.1/_prod/x/a.sql", []string{"x", "_prod", "v2.1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RelativeExtraSegments(p(tt.root), p(tt.file))
			if len(tt.want) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}
