package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agendaja/agenda-api/internal/httperr"
	"github.com/agendaja/agenda-api/internal/models"
)

func TestNormalizeDayKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"seg", "seg", true},
		{"SEG", "seg", true},
		{"  ter ", "ter", true},
		{"Sáb", "sab", true},
		{"sábado", "sab", true},
		{"DOMINGO", "dom", true},
		{"qui", "qui", true},
		{"xyz", "", false},
		{"se", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := NormalizeDayKey(tt.in)
		assert.Equal(t, tt.ok, ok, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestWeekdayKey(t *testing.T) {
	// 2025-03-02 é um domingo; os sete dias seguintes cobrem a semana.
	sunday := time.Date(2025, 3, 2, 12, 0, 0, 0, time.UTC)
	want := []string{"dom", "seg", "ter", "qua", "qui", "sex", "sab"}

	for i, key := range want {
		assert.Equal(t, key, WeekdayKey(sunday.AddDate(0, 0, i)))
	}
}

func TestBuildWeek_AbsentDaysAreClosed(t *testing.T) {
	rows, err := BuildWeek(map[string]*[2]string{
		"seg": {"09:00", "18:00"},
		"qua": {"10:00", "16:00"},
		"sab": nil,
	})
	require.NoError(t, err)
	require.Len(t, rows, 7)

	byKey := map[string]models.BusinessHours{}
	for _, row := range rows {
		byKey[row.Weekday] = row
	}

	assert.False(t, byKey["seg"].Closed)
	assert.Equal(t, "09:00", byKey["seg"].OpensAt)
	assert.Equal(t, "18:00", byKey["seg"].ClosesAt)
	assert.False(t, byKey["qua"].Closed)

	for _, key := range []string{"dom", "ter", "qui", "sex", "sab"} {
		assert.True(t, byKey[key].Closed, "dia %s deveria estar fechado", key)
	}
}

func TestBuildWeek_NormalizesKeys(t *testing.T) {
	rows, err := BuildWeek(map[string]*[2]string{
		"SÁB": {"08:00", "12:00"},
	})
	require.NoError(t, err)

	for _, row := range rows {
		if row.Weekday == "sab" {
			assert.False(t, row.Closed)
			assert.Equal(t, "08:00", row.OpensAt)
			return
		}
	}
	t.Fatal("linha de sábado não encontrada")
}

func TestBuildWeek_RejectsInvalidInput(t *testing.T) {
	_, err := BuildWeek(map[string]*[2]string{"xyz": {"09:00", "18:00"}})
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "invalid_weekday"))

	_, err = BuildWeek(map[string]*[2]string{"seg": {"9h", "18:00"}})
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "invalid_business_hours"))

	_, err = BuildWeek(map[string]*[2]string{"seg": {"18:00", "09:00"}})
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "invalid_business_hours"))

	_, err = BuildWeek(map[string]*[2]string{"seg": {"09:00", "09:00"}})
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "invalid_business_hours"))
}

func TestWeekMap_RoundTrip(t *testing.T) {
	rows, err := BuildWeek(map[string]*[2]string{
		"seg": {"09:00", "18:00"},
	})
	require.NoError(t, err)

	out := WeekMap(rows)
	require.Len(t, out, 7)

	require.NotNil(t, out["seg"])
	assert.Equal(t, [2]string{"09:00", "18:00"}, *out["seg"])

	for _, key := range []string{"dom", "ter", "qua", "qui", "sex", "sab"} {
		assert.Nil(t, out[key], "dia %s deveria ser null", key)
	}
}
