package autocomplete_test

import (
	"testing"

	"github.com/Vlok123/carintel/internal/carintel/client/autocomplete"

	"github.com/stretchr/testify/require"
)

var brands = []string{
	"Alfa Romeo", "Audi", "BMW", "Citroen", "Dacia", "Fiat", "Ford",
	"Honda", "Hyundai", "Kia", "Mazda", "Mercedes-Benz", "Mitsubishi",
	"Nissan", "Opel", "Peugeot", "Renault", "Seat", "Skoda", "Subaru",
	"Suzuki", "Toyota", "Volkswagen", "Volvo",
}

func TestFilterEmptyQuery(t *testing.T) {
	got := autocomplete.Filter(brands, "")

	require.Len(t, got, 10)
	require.Equal(t, brands[:10], got)
}

func TestFilterEmptyQueryShortList(t *testing.T) {
	got := autocomplete.Filter(brands[:3], "")

	require.Equal(t, brands[:3], got)
}

func TestFilterCaseInsensitive(t *testing.T) {
	got := autocomplete.Filter(brands, "vol")

	require.Equal(t, []string{"Volkswagen", "Volvo"}, got)

	got = autocomplete.Filter(brands, "VOL")
	require.Equal(t, []string{"Volkswagen", "Volvo"}, got)
}

func TestFilterMidwordMatches(t *testing.T) {
	got := autocomplete.Filter([]string{"BMW", "Mercedes", "Ram", "Amber"}, "am")

	require.Equal(t, []string{"Mercedes", "Ram", "Amber"}, got)
}

func TestFilterSubstringNotPrefix(t *testing.T) {
	got := autocomplete.Filter(brands, "benz")

	require.Equal(t, []string{"Mercedes-Benz"}, got)
}

func TestFilterSourceOrder(t *testing.T) {
	got := autocomplete.Filter(brands, "su")

	require.Equal(t, []string{"Mitsubishi", "Subaru", "Suzuki"}, got)
}

func TestFilterMatchLimit(t *testing.T) {
	options := make([]string, 30)
	for i := range options {
		options[i] = "match"
	}

	got := autocomplete.Filter(options, "mat")
	require.Len(t, got, 20)
}

func TestFilterNoMatches(t *testing.T) {
	got := autocomplete.Filter(brands, "xyzzy")

	require.Empty(t, got)
}

func TestStateDownWraps(t *testing.T) {
	st := autocomplete.NewState()
	st.SetSuggestions([]string{"a", "b", "c"})

	require.True(t, st.Open)
	require.Equal(t, -1, st.Highlighted)

	st.Down()
	require.Equal(t, 0, st.Highlighted)

	st.Down()
	st.Down()
	require.Equal(t, 2, st.Highlighted)

	st.Down()
	require.Equal(t, 0, st.Highlighted)
}

func TestStateUpWraps(t *testing.T) {
	st := autocomplete.NewState()
	st.SetSuggestions([]string{"a", "b", "c"})

	st.Up()
	require.Equal(t, 2, st.Highlighted)

	st.Up()
	require.Equal(t, 1, st.Highlighted)
}

func TestStateEnterCommits(t *testing.T) {
	st := autocomplete.NewState()
	st.SetSuggestions([]string{"a", "b", "c"})

	st.Down()
	st.Down()

	choice, ok := st.Enter()
	require.True(t, ok)
	require.Equal(t, "b", choice)
	require.False(t, st.Open)
	require.Equal(t, -1, st.Highlighted)
}

func TestStateEnterWithoutHighlightOpens(t *testing.T) {
	st := autocomplete.NewState()
	st.SetSuggestions([]string{"a", "b"})
	st.Escape()

	choice, ok := st.Enter()
	require.False(t, ok)
	require.Empty(t, choice)
	require.True(t, st.Open)
}

func TestStateEscapeAndClickOutside(t *testing.T) {
	st := autocomplete.NewState()
	st.SetSuggestions([]string{"a"})
	st.Down()

	st.Escape()
	require.False(t, st.Open)
	require.Equal(t, -1, st.Highlighted)

	st.SetSuggestions([]string{"a"})
	st.ClickOutside()
	require.False(t, st.Open)
}

func TestStateEmptySuggestions(t *testing.T) {
	st := autocomplete.NewState()
	st.SetSuggestions(nil)

	require.False(t, st.Open)

	st.Down()
	st.Up()
	require.Equal(t, -1, st.Highlighted)

	_, ok := st.Enter()
	require.False(t, ok)
	require.False(t, st.Open)
}
