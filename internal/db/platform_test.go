package db

import "testing"

func TestModifyLimitQuery(t *testing.T) {
	p := NewAdapter().Platform()

	tests := []struct {
		name   string
		limit  int
		offset int
		want   string
	}{
		{"both", 10, 5, "SELECT * FROM t LIMIT 10 OFFSET 5"},
		{"limit only", 10, -1, "SELECT * FROM t LIMIT 10"},
		{"offset only", -1, 5, "SELECT * FROM t OFFSET 5"},
		{"neither", -1, -1, "SELECT * FROM t"},
		{"zero limit", 0, -1, "SELECT * FROM t LIMIT 0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.ModifyLimitQuery("SELECT * FROM t", tt.limit, tt.offset)
			if got != tt.want {
				t.Errorf("ModifyLimitQuery(%d, %d) = %q, want %q", tt.limit, tt.offset, got, tt.want)
			}
		})
	}
}

func TestPlatformSequenceSQL(t *testing.T) {
	p := NewAdapter().Platform()

	if got := p.SequenceCurrValSQL("pub_seq"); got != "SELECT CURRVAL('pub_seq')" {
		t.Errorf("SequenceCurrValSQL() = %q", got)
	}
	if got := p.SequenceNextValSQL("pub_seq"); got != "SELECT NEXTVAL('pub_seq')" {
		t.Errorf("SequenceNextValSQL() = %q", got)
	}
}
