package model

import "testing"

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestPokemon_Merge_AppliesOnlySetFields(t *testing.T) {
	t.Parallel()

	orig := Pokemon{ID: "abc", No: 1, Name: "BULBASAUR", Type: strPtr("grass")}

	merged := orig.Merge(&UpdatePokemonRequest{Name: strPtr("IVYSAUR")})

	if merged.Name != "IVYSAUR" {
		t.Errorf("expected name IVYSAUR, got %q", merged.Name)
	}
	if merged.No != 1 || merged.ID != "abc" {
		t.Errorf("unset fields changed: %+v", merged)
	}
	if merged.Type == nil || *merged.Type != "grass" {
		t.Errorf("expected type to be kept, got %v", merged.Type)
	}
	if orig.Name != "BULBASAUR" {
		t.Errorf("merge must not mutate the receiver, got %q", orig.Name)
	}
}

func TestPokemon_Merge_AllFields(t *testing.T) {
	t.Parallel()

	orig := Pokemon{ID: "abc", No: 1, Name: "BULBASAUR"}

	merged := orig.Merge(&UpdatePokemonRequest{
		Name: strPtr("MEW"),
		No:   intPtr(151),
		Type: strPtr("psychic"),
	})

	if merged.Name != "MEW" || merged.No != 151 || merged.Type == nil || *merged.Type != "psychic" {
		t.Errorf("unexpected merge result: %+v", merged)
	}
}

func TestPokemon_Merge_NilRequest(t *testing.T) {
	t.Parallel()

	orig := Pokemon{ID: "abc", No: 4, Name: "CHARMANDER"}

	merged := orig.Merge(nil)

	if *merged != orig {
		t.Errorf("expected unchanged copy, got %+v", merged)
	}
}

func TestUpdatePokemonRequest_IsEmpty(t *testing.T) {
	t.Parallel()

	if !(&UpdatePokemonRequest{}).IsEmpty() {
		t.Error("expected empty request")
	}
	if (&UpdatePokemonRequest{No: intPtr(3)}).IsEmpty() {
		t.Error("expected non-empty request")
	}
}
