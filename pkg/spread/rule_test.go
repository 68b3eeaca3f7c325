package spread

import "testing"

func TestRuleEligible(t *testing.T) {
	tests := []struct {
		name      string
		rule      Rule
		index     int
		remaining int
		want      bool
	}{
		{
			name:      "period match with enough remaining",
			rule:      Rule{MinRemaining: 3, Every: 4, Offset: 1, Kind: KindTrio},
			index:     5,
			remaining: 6,
			want:      true,
		},
		{
			name:      "period mismatch",
			rule:      Rule{MinRemaining: 3, Every: 4, Offset: 1, Kind: KindTrio},
			index:     4,
			remaining: 6,
			want:      false,
		},
		{
			name:      "too few remaining",
			rule:      Rule{MinRemaining: 3, Every: 4, Offset: 1, Kind: KindTrio},
			index:     1,
			remaining: 2,
			want:      false,
		},
		{
			name:      "zero period always fires",
			rule:      Rule{MinRemaining: 2, Kind: KindSplit},
			index:     17,
			remaining: 2,
			want:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rule.Eligible(tt.index, tt.remaining); got != tt.want {
				t.Errorf("Eligible(%d, %d) = %v, want %v", tt.index, tt.remaining, got, tt.want)
			}
		})
	}
}

func TestRuleValidate(t *testing.T) {
	tests := []struct {
		name    string
		rule    Rule
		wantErr bool
	}{
		{
			name: "valid periodic rule",
			rule: Rule{MinRemaining: 3, Every: 4, Offset: 1, Kind: KindTrio},
		},
		{
			name: "valid always rule",
			rule: Rule{MinRemaining: 2, Kind: KindSplit},
		},
		{
			name:    "unknown kind",
			rule:    Rule{MinRemaining: 1, Kind: Kind("mosaic-9")},
			wantErr: true,
		},
		{
			name:    "min remaining below cardinality",
			rule:    Rule{MinRemaining: 2, Kind: KindQuad},
			wantErr: true,
		},
		{
			name:    "offset outside period",
			rule:    Rule{MinRemaining: 2, Every: 3, Offset: 3, Kind: KindSplit},
			wantErr: true,
		},
		{
			name:    "offset without period",
			rule:    Rule{MinRemaining: 1, Offset: 2, Kind: KindHero},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.rule.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestKindCardinality(t *testing.T) {
	want := map[Kind]int{
		KindHero:           1,
		KindSingleCentered: 1,
		KindOffsetLeft:     1,
		KindOffsetRight:    1,
		KindSplit:          2,
		KindDuoStacked:     2,
		KindTrio:           3,
		KindQuad:           4,
		KindCollageLeft:    3,
		KindCollageRight:   3,
	}

	for _, k := range Kinds() {
		if got := k.Cardinality(); got != want[k] {
			t.Errorf("%s cardinality = %d, want %d", k, got, want[k])
		}
		if !k.Valid() {
			t.Errorf("%s should be valid", k)
		}
	}

	if Kind("polaroid").Valid() {
		t.Error("unknown kind should not be valid")
	}
	if got := Kind("polaroid").Cardinality(); got != 0 {
		t.Errorf("unknown kind cardinality = %d, want 0", got)
	}
}
