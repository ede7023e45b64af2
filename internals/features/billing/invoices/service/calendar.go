// file: internals/features/billing/invoices/service/calendar.go
package service

import "time"

// Hari libur mingguan tetap: Minggu. Kebijakan sekolah, bukan konfigurasi.
const restDay = time.Sunday

// CountBillableDays: jumlah hari efektif pada rentang [start, end],
// inklusif dua ujung, skip hari Minggu. 0 kalau start > end.
// Jalan hari-per-hari supaya aman di batas bulan/tahun dan tahun kabisat.
func CountBillableDays(start, end time.Time) int {
	start = dateOnly(start)
	end = dateOnly(end)

	n := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if d.Weekday() != restDay {
			n++
		}
	}
	return n
}

// MonthBounds: tanggal pertama & terakhir periode (month, year).
func MonthBounds(month, year int) (time.Time, time.Time) {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return first, last
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
