package models

import (
	"fmt"
	"strings"
)

// ReportKind identifies one of the monthly aggregation reports.
type ReportKind string

const (
	ReportPocketMoneyMonthly     ReportKind = "pocket-money-monthly"
	ReportPocketMoneyOutstanding ReportKind = "pocket-money-outstanding"
	ReportLaundryMonthly         ReportKind = "laundry-monthly"
	ReportLaundryCost            ReportKind = "laundry-cost"
	ReportDhobiSummary           ReportKind = "dhobi-summary"
	ReportStudentFull            ReportKind = "student-full"
)

// ReportCategory groups reports in the catalogue.
type ReportCategory string

const (
	ReportCategoryPocketMoney ReportCategory = "pocket-money"
	ReportCategoryLaundry     ReportCategory = "laundry"
	ReportCategoryGeneral     ReportCategory = "general"
)

// ReportDefinition describes a report for catalogue listings.
type ReportDefinition struct {
	Kind        ReportKind     `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Category    ReportCategory `json:"category"`
	Tabular     bool           `json:"tabular"`
}

var reportCatalogue = []ReportDefinition{
	{Kind: ReportPocketMoneyMonthly, Title: "Pocket Money Report", Description: "Monthly summary of pocket money distributed to all students", Category: ReportCategoryPocketMoney},
	{Kind: ReportPocketMoneyOutstanding, Title: "Outstanding Balance Report", Description: "Students with remaining pocket money balance", Category: ReportCategoryPocketMoney, Tabular: true},
	{Kind: ReportLaundryMonthly, Title: "Laundry Report", Description: "Monthly laundry summary for all students", Category: ReportCategoryLaundry},
	{Kind: ReportLaundryCost, Title: "Laundry Cost Report", Description: "Laundry costs broken down per day of the month", Category: ReportCategoryLaundry, Tabular: true},
	{Kind: ReportDhobiSummary, Title: "Dhobi Performance Report", Description: "Summary of work done by each laundry staff member", Category: ReportCategoryLaundry, Tabular: true},
	{Kind: ReportStudentFull, Title: "Student Complete Report", Description: "Full report including pocket money and laundry per student", Category: ReportCategoryGeneral, Tabular: true},
}

// ReportCatalogue returns every supported report in display order.
func ReportCatalogue() []ReportDefinition {
	out := make([]ReportDefinition, len(reportCatalogue))
	copy(out, reportCatalogue)
	return out
}

// ParseReportKind resolves a report identifier. Matching is exact.
func ParseReportKind(id string) (ReportKind, bool) {
	for _, def := range reportCatalogue {
		if string(def.Kind) == id {
			return def.Kind, true
		}
	}
	return "", false
}

// Definition returns the catalogue entry of the kind.
func (k ReportKind) Definition() (ReportDefinition, bool) {
	for _, def := range reportCatalogue {
		if def.Kind == k {
			return def, true
		}
	}
	return ReportDefinition{}, false
}

// Heading is the banner printed above rendered reports, e.g. "POCKET MONEY MONTHLY".
func (k ReportKind) Heading() string {
	return strings.ToUpper(strings.ReplaceAll(string(k), "-", " "))
}

// Period is the calendar month aggregation window.
type Period struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

// Validate checks the month is 1-12 and the year has four digits.
func (p Period) Validate() error {
	if p.Month < 1 || p.Month > 12 {
		return fmt.Errorf("month must be between 1 and 12")
	}
	if p.Year < 1000 || p.Year > 9999 {
		return fmt.Errorf("year must be a four digit number")
	}
	return nil
}

func (p Period) String() string {
	return fmt.Sprintf("%d-%d", p.Month, p.Year)
}

// Field is one named value of a report record.
type Field struct {
	Key   string
	Value interface{}
}

// Record is a report row exposing its fields in presentation order. Keys match the JSON tags.
type Record interface {
	Fields() []Field
}

// Quiet is implemented by summary records that can tell their window saw no activity at all.
type Quiet interface {
	Quiet() bool
}

// PocketMoneyMonthlySummary totals the pocket money handed out in a month.
type PocketMoneyMonthlySummary struct {
	TotalGiven float64 `db:"total_given" json:"total_given"`
	Students   int     `db:"students" json:"students"`
}

func (r PocketMoneyMonthlySummary) Fields() []Field {
	return []Field{{"total_given", r.TotalGiven}, {"students", r.Students}}
}

func (r PocketMoneyMonthlySummary) Quiet() bool {
	return r.Students == 0
}

// OutstandingBalanceRow is a student who has not yet received the full monthly allowance.
type OutstandingBalanceRow struct {
	StudentID          string  `db:"student_code" json:"studentId"`
	Name               string  `db:"name" json:"name"`
	MonthlyPocketMoney float64 `db:"monthly_pocket_money" json:"monthlyPocketMoney"`
	GivenAmount        float64 `db:"given_amount" json:"given_amount"`
	Remaining          float64 `db:"remaining" json:"remaining"`
}

func (r OutstandingBalanceRow) Fields() []Field {
	return []Field{
		{"studentId", r.StudentID},
		{"name", r.Name},
		{"monthlyPocketMoney", r.MonthlyPocketMoney},
		{"given_amount", r.GivenAmount},
		{"remaining", r.Remaining},
	}
}

// LaundryMonthlySummary totals laundry activity in a month.
type LaundryMonthlySummary struct {
	TotalEntries int     `db:"total_entries" json:"total_entries"`
	TotalClothes int     `db:"total_clothes" json:"total_clothes"`
	TotalCost    float64 `db:"total_cost" json:"total_cost"`
}

func (r LaundryMonthlySummary) Fields() []Field {
	return []Field{{"total_entries", r.TotalEntries}, {"total_clothes", r.TotalClothes}, {"total_cost", r.TotalCost}}
}

func (r LaundryMonthlySummary) Quiet() bool {
	return r.TotalEntries == 0
}

// LaundryCostRow is the laundry spend of one calendar day. Date is YYYY-MM-DD.
type LaundryCostRow struct {
	Date string  `db:"date" json:"date"`
	Cost float64 `db:"cost" json:"cost"`
}

func (r LaundryCostRow) Fields() []Field {
	return []Field{{"date", r.Date}, {"cost", r.Cost}}
}

// DhobiSummaryRow is one laundry staff member's output for a month.
type DhobiSummaryRow struct {
	Name         string  `db:"name" json:"name"`
	TotalClothes int     `db:"total_clothes" json:"total_clothes"`
	TotalEarning float64 `db:"total_earning" json:"total_earning"`
}

func (r DhobiSummaryRow) Fields() []Field {
	return []Field{{"name", r.Name}, {"total_clothes", r.TotalClothes}, {"total_earning", r.TotalEarning}}
}

// StudentFullRow combines pocket money and laundry spend per student.
type StudentFullRow struct {
	StudentID          string  `db:"student_code" json:"studentId"`
	Name               string  `db:"name" json:"name"`
	MonthlyPocketMoney float64 `db:"monthly_pocket_money" json:"monthlyPocketMoney"`
	PocketGiven        float64 `db:"pocket_given" json:"pocket_given"`
	LaundryCost        float64 `db:"laundry_cost" json:"laundry_cost"`
}

func (r StudentFullRow) Fields() []Field {
	return []Field{
		{"studentId", r.StudentID},
		{"name", r.Name},
		{"monthlyPocketMoney", r.MonthlyPocketMoney},
		{"pocket_given", r.PocketGiven},
		{"laundry_cost", r.LaundryCost},
	}
}

// ReportResult is the resolved output of a report. Exactly one of Summary or Rows is meaningful,
// depending on whether the kind is tabular.
type ReportResult struct {
	Kind    ReportKind
	Period  Period
	Summary Record
	Rows    []Record
}

// Tabular reports whether the result carries a row sequence.
func (r ReportResult) Tabular() bool {
	return r.Summary == nil
}

// Data is the payload served by the JSON report endpoint: the single record for summary reports
// and the (possibly empty) row list otherwise.
func (r ReportResult) Data() interface{} {
	if r.Summary != nil {
		return r.Summary
	}
	if r.Rows == nil {
		return []Record{}
	}
	return r.Rows
}

// ReportFormat enumerates the renderings of a report.
type ReportFormat string

const (
	ReportFormatJSON  ReportFormat = "json"
	ReportFormatPDF   ReportFormat = "pdf"
	ReportFormatExcel ReportFormat = "excel"
	ReportFormatPrint ReportFormat = "print"
	ReportFormatCSV   ReportFormat = "csv"
)

// ParseReportFormat resolves an export format name.
func ParseReportFormat(raw string) (ReportFormat, bool) {
	switch f := ReportFormat(strings.ToLower(raw)); f {
	case ReportFormatJSON, ReportFormatPDF, ReportFormatExcel, ReportFormatPrint, ReportFormatCSV:
		return f, true
	}
	return "", false
}
