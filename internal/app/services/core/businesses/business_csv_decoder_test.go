package businesses

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"openhours-service/internal/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const restaurantsCSV = `"Restaurant Name","Hours"
"Kushi Tsuru","Mon-Sun 11:30 am - 9 pm"
"Osakaya Restaurant","Mon-Thu, Sun 11:30 am - 9 pm  / Fri-Sat 11:30 am - 9:30 pm"
"The Stinking Rose","Mon-Thu, Sun 11:30 am - 10 pm  / Fri-Sat 11:30 am - 11 pm"
"Naan 'N' Curry, Downtown","Mon-Sun 11 am - 4 am"
`

func TestDecodeBusinessesCSV(t *testing.T) {
	t.Run("Skips Header", func(t *testing.T) {
		result, err := decodeBusinessesCSV(strings.NewReader(restaurantsCSV), "test")
		require.NoError(t, err)
		require.Len(t, result, 4)
		assert.Equal(t, models.Business{Name: "Kushi Tsuru", Hours: "Mon-Sun 11:30 am - 9 pm"}, result[0])
	})

	t.Run("Quoted Comma In Name", func(t *testing.T) {
		result, err := decodeBusinessesCSV(strings.NewReader(restaurantsCSV), "test")
		require.NoError(t, err)
		assert.Equal(t, "Naan 'N' Curry, Downtown", result[3].Name)
		assert.Equal(t, "Mon-Sun 11 am - 4 am", result[3].Hours)
	})

	t.Run("Header Only", func(t *testing.T) {
		result, err := decodeBusinessesCSV(strings.NewReader("name,hours\n"), "test")
		require.NoError(t, err)
		assert.Empty(t, result)
	})

	t.Run("Empty Input", func(t *testing.T) {
		result, err := decodeBusinessesCSV(strings.NewReader(""), "test")
		require.NoError(t, err)
		assert.Empty(t, result)
	})

	t.Run("Wrong Field Count", func(t *testing.T) {
		_, err := decodeBusinessesCSV(strings.NewReader("name,hours\nonly-a-name\n"), "test")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "test")
	})
}

func TestBusinessCSVSource(t *testing.T) {
	t.Run("Reads File", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "restaurants.csv")
		require.NoError(t, os.WriteFile(path, []byte(restaurantsCSV), 0o600))

		source := NewBusinessCSVSource(path, zap.NewNop())
		result, err := source.FindAll(requestContext())
		require.NoError(t, err)
		assert.Len(t, result, 4)
		assert.Equal(t, "csv", source.Name())
	})

	t.Run("Missing File", func(t *testing.T) {
		source := NewBusinessCSVSource(filepath.Join(t.TempDir(), "absent.csv"), zap.NewNop())
		_, err := source.FindAll(requestContext())
		assert.Error(t, err)
	})
}

func TestBusinessMinioSource(t *testing.T) {
	storage := newFakeStorage()
	storage.objects["openhours/restaurants.csv"] = []byte(restaurantsCSV)

	t.Run("Reads Object", func(t *testing.T) {
		source := NewBusinessMinioSource(storage, "openhours", "restaurants.csv", zap.NewNop())
		result, err := source.FindAll(requestContext())
		require.NoError(t, err)
		assert.Len(t, result, 4)
		assert.Equal(t, "minio", source.Name())
	})

	t.Run("Missing Object", func(t *testing.T) {
		source := NewBusinessMinioSource(storage, "openhours", "absent.csv", zap.NewNop())
		_, err := source.FindAll(requestContext())
		assert.Error(t, err)
	})
}

func TestActiveBusinessesFilter(t *testing.T) {
	filter := activeBusinessesFilter()
	value, ok := filter["deletedAt"]
	require.True(t, ok)
	assert.Nil(t, value)
}
