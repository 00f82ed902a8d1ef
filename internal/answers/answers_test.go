package answers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDepots_Configured(t *testing.T) {
	tests := []struct {
		name   string
		depots Depots
		want   []Depot
	}{
		{
			name:   "none",
			depots: Depots{},
			want:   []Depot{},
		},
		{
			name:   "all platforms in fixed order",
			depots: Depots{Linux: 3, Windows: 1, MacOS: 2},
			want: []Depot{
				{ID: 1, Platform: Windows},
				{ID: 2, Platform: MacOS},
				{ID: 3, Platform: Linux},
			},
		},
		{
			name:   "windows and linux",
			depots: Depots{Windows: 10, Linux: 11},
			want: []Depot{
				{ID: 10, Platform: Windows},
				{ID: 11, Platform: Linux},
			},
		},
		{
			name:   "macos only",
			depots: Depots{MacOS: 7},
			want:   []Depot{{ID: 7, Platform: MacOS}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.depots.Configured())
			assert.Equal(t, len(tt.want) > 0, tt.depots.Any())
		})
	}
}

func TestDepots_SetGet(t *testing.T) {
	var d Depots
	for i, p := range Platforms {
		d.Set(p, uint64(i+1))
	}

	assert.Equal(t, uint64(1), d.Get(Windows))
	assert.Equal(t, uint64(2), d.Get(MacOS))
	assert.Equal(t, uint64(3), d.Get(Linux))
	assert.Equal(t, uint64(0), d.Get(Platform("amiga")))
}

func TestParseAppID(t *testing.T) {
	for _, input := range []string{"", "abc", "12.5"} {
		_, err := ParseAppID(input)

		var verr *ValidationError
		require.ErrorAs(t, err, &verr, "ParseAppID(%q)", input)
		assert.Equal(t, "app_id", verr.Field)
	}

	id, err := ParseAppID("123")
	require.NoError(t, err)
	assert.Equal(t, uint64(123), id)
}

func TestParseDepotID(t *testing.T) {
	id, err := ParseDepotID(Windows, "")
	require.NoError(t, err)
	assert.Zero(t, id)

	id, err = ParseDepotID(Linux, "11")
	require.NoError(t, err)
	assert.Equal(t, uint64(11), id)

	_, err = ParseDepotID(MacOS, "mac")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "depots.macos", verr.Field)
	assert.Contains(t, err.Error(), "numeric DEPOT ID")
}

func TestParseBranch(t *testing.T) {
	branch, err := ParseBranch("", DefaultBranch)
	require.NoError(t, err)
	assert.Equal(t, "beta", branch)

	branch, err = ParseBranch("  release ", DefaultBranch)
	require.NoError(t, err)
	assert.Equal(t, "release", branch)

	_, err = ParseBranch(" ", "")
	assert.Error(t, err)
}

func TestAnswerSet_Validate(t *testing.T) {
	tests := []struct {
		name      string
		answers   AnswerSet
		wantField string
		wantIn    []string
	}{
		{
			name:    "valid",
			answers: AnswerSet{AppID: 1, Branch: "beta"},
		},
		{
			name:    "distinct depots",
			answers: AnswerSet{AppID: 1, Branch: "beta", Depots: Depots{Windows: 10, MacOS: 11, Linux: 12}},
		},
		{
			name:      "missing app id",
			answers:   AnswerSet{Branch: "beta"},
			wantField: "app_id",
		},
		{
			name:      "missing branch",
			answers:   AnswerSet{AppID: 1},
			wantField: "branch",
		},
		{
			name:      "windows and linux share a depot",
			answers:   AnswerSet{AppID: 1, Branch: "beta", Depots: Depots{Windows: 10, Linux: 10}},
			wantField: "depots.linux",
			wantIn:    []string{"10", "windows", "linux"},
		},
		{
			name:      "macos and linux share a depot",
			answers:   AnswerSet{AppID: 1, Branch: "beta", Depots: Depots{Windows: 9, MacOS: 10, Linux: 10}},
			wantField: "depots.linux",
			wantIn:    []string{"macos", "linux"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.answers.Validate()

			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantField, verr.Field)
			for _, want := range tt.wantIn {
				assert.Contains(t, verr.Reason, want)
			}
		})
	}
}

func TestDepots_Conflict(t *testing.T) {
	d := Depots{Windows: 10}

	assert.NoError(t, d.Conflict(Windows, 10))
	assert.NoError(t, d.Conflict(Linux, 11))
	assert.NoError(t, d.Conflict(Linux, 0))

	err := d.Conflict(Linux, 10)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "depots.linux", verr.Field)
	assert.Contains(t, verr.Reason, "windows")
}

func TestDecide(t *testing.T) {
	yes, no := true, false

	tests := []struct {
		name    string
		answers AnswerSet
		wantErr error
	}{
		{
			name:    "continues with a depot",
			answers: AnswerSet{AppID: 1, Branch: "beta", Depots: Depots{Windows: 2}},
		},
		{
			name:    "continues when overwrite accepted",
			answers: AnswerSet{AppID: 1, Branch: "beta", Depots: Depots{Linux: 2}, Override: &yes},
		},
		{
			name:    "aborts without depots",
			answers: AnswerSet{AppID: 1, Branch: "beta"},
			wantErr: ErrNoDepot,
		},
		{
			name:    "aborts when overwrite declined",
			answers: AnswerSet{AppID: 1, Branch: "beta", Depots: Depots{Windows: 2}, Override: &no},
			wantErr: ErrOverrideDeclined,
		},
		{
			name:    "declined overwrite wins over missing depot",
			answers: AnswerSet{AppID: 1, Branch: "beta", Override: &no},
			wantErr: ErrOverrideDeclined,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Decide(tt.answers)

			if tt.wantErr == nil {
				assert.False(t, d.Aborted())
				assert.Equal(t, tt.answers, d.Answers)
				return
			}

			assert.True(t, d.Aborted())
			assert.ErrorIs(t, d.Err, tt.wantErr)
			assert.Contains(t, d.Reason, "Aborting...")
		})
	}
}
