package models

import "testing"

func TestEncodeDate(t *testing.T) {
	tests := []struct {
		offset int
		want   string
	}{
		{0, "2021-08-01"},
		{1, "2021-08-02"},
		{-1, "2021-07-31"},
		{30, "2021-08-31"},
		{31, "2021-09-01"},
		{152, "2021-12-31"},
		{153, "2022-01-01"},
		{-365, "2020-08-01"},
	}
	for _, tt := range tests {
		if got := EncodeDate(tt.offset); got != tt.want {
			t.Errorf("EncodeDate(%d) = %q, want %q", tt.offset, got, tt.want)
		}
	}
}

func TestProductName(t *testing.T) {
	want := map[int]string{
		0: "Bolen Banana",
		1: "Bolen Cokju (Mini)",
		2: "Bolen Coklat",
		3: "Bolen Coklat Keju",
		4: "Bolen Keju Mini",
		5: "Bolen Pisang Coklat",
		6: "Bolen Proltape",
	}
	for code, name := range want {
		if got := ProductName(code); got != name {
			t.Errorf("ProductName(%d) = %q, want %q", code, got, name)
		}
	}
	for _, code := range []int{-1, 7, 100} {
		if got := ProductName(code); got != "Unknown" {
			t.Errorf("ProductName(%d) = %q, want Unknown", code, got)
		}
	}
}

func TestDayName(t *testing.T) {
	want := []string{"Senin", "Selasa", "Rabu", "Kamis", "Jumat", "Sabtu", "Minggu"}
	for i, name := range want {
		if got := DayName(i + 1); got != name {
			t.Errorf("DayName(%d) = %q, want %q", i+1, got, name)
		}
	}
	for _, code := range []int{0, 8, -3} {
		if got := DayName(code); got != "Unknown" {
			t.Errorf("DayName(%d) = %q, want Unknown", code, got)
		}
	}
}

func TestStatusLabel(t *testing.T) {
	tests := []struct {
		class int
		want  string
	}{
		{0, "normal"},
		{1, "overstock"},
		{2, "understock"},
		{3, "3"},
		{-1, "-1"},
	}
	for _, tt := range tests {
		if got := StatusLabel(tt.class); got != tt.want {
			t.Errorf("StatusLabel(%d) = %q, want %q", tt.class, got, tt.want)
		}
	}
}
