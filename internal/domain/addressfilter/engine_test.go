package addressfilter

import (
	"reflect"
	"testing"

	"addressbook/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleBook() []*entity.Address {
	return []*entity.Address{
		{Street: "Rua A", Number: "10", Neighborhood: "Centro"},
		{Street: "Rua B", Number: "20", Neighborhood: "Jardim"},
	}
}

func richBook() []*entity.Address {
	return []*entity.Address{
		{Street: "Avenida Paulista", Number: "1578", Neighborhood: "Bela Vista"},
		{Street: "Rua Augusta", Number: "12B", Neighborhood: "Consolação"},
		{Street: "Rua Oscar Freire", Number: "s/n", Neighborhood: "Jardins"},
		{Street: "", Number: "", Neighborhood: ""},
		{Street: "Alameda Santos", Number: "200", Neighborhood: "Cerqueira César"},
		{Street: "RUA DA CONSOLAÇÃO", Number: "3", Neighborhood: "Centro"},
	}
}

func sameBacking(t *testing.T, want, got []*entity.Address) {
	t.Helper()

	require.Len(t, got, len(want))
	assert.Equal(t, reflect.ValueOf(want).Pointer(), reflect.ValueOf(got).Pointer())
}

func TestEngine_Scenarios(t *testing.T) {
	t.Parallel()

	book := sampleBook()

	tests := []struct {
		name     string
		query    string
		expected []*entity.Address
	}{
		{name: "neighborhood match", query: "jardim", expected: []*entity.Address{book[1]}},
		{name: "street prefix matches both", query: "rua", expected: book},
		{name: "empty query returns everything", query: "", expected: book},
		{name: "no match", query: "xyz", expected: []*entity.Address{}},
		{name: "number in street line", query: "a, 10", expected: []*entity.Address{book[0]}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			engine := New()
			engine.Load(book)

			assert.Equal(t, tt.expected, engine.Search(tt.query))
		})
	}
}

func TestEngine_EmptyBook(t *testing.T) {
	t.Parallel()

	engine := New()
	engine.Load([]*entity.Address{})

	result := engine.Search("a")
	assert.NotNil(t, result)
	assert.Empty(t, result)
	assert.Equal(t, 0, engine.Len())
}

func TestEngine_NewIsEmpty(t *testing.T) {
	t.Parallel()

	engine := New()

	assert.Empty(t, engine.Search(""))
	assert.Empty(t, engine.Search("rua"))
	assert.Empty(t, engine.Filtered())
}

func TestEngine_EmptyQueryReturnsLoadedSlice(t *testing.T) {
	t.Parallel()

	book := richBook()
	engine := New()
	engine.Load(book)

	sameBacking(t, book, engine.Search(""))
	sameBacking(t, book, engine.All())
}

func TestEngine_WhitespaceQueryIsNotEmpty(t *testing.T) {
	t.Parallel()

	engine := New()
	engine.Load([]*entity.Address{
		{Street: "Rua A", Number: "1", Neighborhood: "Centro"},
		{Street: "Travessa", Number: "", Neighborhood: "Sé"},
	})

	// Every street line contains ", " so a single space matches via the separator.
	assert.Len(t, engine.Search(" "), 2)
	// Two spaces never occur in either candidate.
	assert.Empty(t, engine.Search("  "))
}

func TestEngine_CaseInsensitive(t *testing.T) {
	t.Parallel()

	engine := New()
	engine.Load(richBook())

	lower := engine.Search("rua")
	upper := engine.Search("RUA")
	mixed := engine.Search("rUa")

	assert.Equal(t, lower, upper)
	assert.Equal(t, lower, mixed)
	assert.Len(t, lower, 3)
}

func TestEngine_NonASCII(t *testing.T) {
	t.Parallel()

	book := richBook()
	engine := New()
	engine.Load(book)

	assert.Equal(t, []*entity.Address{book[1], book[5]}, engine.Search("CONSOLAÇÃO"))
	assert.Equal(t, []*entity.Address{book[4]}, engine.Search("césar"))
}

func TestEngine_ResultIsOrderedSubsequence(t *testing.T) {
	t.Parallel()

	book := richBook()
	engine := New()
	engine.Load(book)

	for _, query := range []string{"a", "ru", "ão", "1", ", ", "z", "SANTOS", "s/n"} {
		result := engine.Search(query)

		next := 0
		for _, address := range result {
			found := false
			for next < len(book) {
				candidate := book[next]
				next++
				if candidate == address {
					found = true

					break
				}
			}
			require.Truef(t, found, "query %q returned an address out of order", query)
			assert.Truef(t, Matches(address, query), "query %q returned a non-matching address", query)
		}

		for _, address := range book {
			if Matches(address, query) {
				assert.Containsf(t, result, address, "query %q missed a matching address", query)
			}
		}
	}
}

func TestEngine_SearchIsIdempotentAndPure(t *testing.T) {
	t.Parallel()

	book := richBook()
	snapshot := make([]entity.Address, len(book))
	for i, address := range book {
		snapshot[i] = *address
	}

	engine := New()
	engine.Load(book)

	first := engine.Search("rua")
	second := engine.Search("rua")
	assert.Equal(t, first, second)

	require.Len(t, engine.All(), len(snapshot))
	for i, address := range engine.All() {
		assert.Equal(t, snapshot[i], *address)
	}
}

func TestEngine_LoadReplacesAndResetsView(t *testing.T) {
	t.Parallel()

	engine := New()
	engine.Load(sampleBook())
	engine.Search("jardim")
	require.Len(t, engine.Filtered(), 1)

	replacement := richBook()
	engine.Load(replacement)

	sameBacking(t, replacement, engine.Filtered())
	assert.Equal(t, len(replacement), engine.Len())
	assert.Empty(t, engine.Search("jardim,"))
}

func TestEngine_NilEntriesNeverMatch(t *testing.T) {
	t.Parallel()

	book := []*entity.Address{nil, {Street: "Rua A", Number: "1", Neighborhood: "Centro"}}
	engine := New()
	engine.Load(book)

	assert.Equal(t, []*entity.Address{book[1]}, engine.Search("centro"))
	assert.Len(t, engine.Search(""), 2)
}

func TestMatches(t *testing.T) {
	t.Parallel()

	address := &entity.Address{Street: "Rua Augusta", Number: "12B", Neighborhood: "Consolação"}

	tests := []struct {
		query    string
		expected bool
	}{
		{query: "", expected: true},
		{query: "augusta, 12b", expected: true},
		{query: "12B", expected: true},
		{query: "consola", expected: true},
		{query: "augusta consolação", expected: false},
		{query: "13", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, Matches(address, tt.query))
		})
	}
}
