package fraud

import (
	"regexp"
	"strings"
	"time"

	"safestay/internal/domain"
)

const fakeIDThreshold = 0.75

// Flag types emitted by the profile detector.
const (
	FlagIncompleteProfile  = "incomplete_profile"
	FlagSuspiciousEmail    = "suspicious_email"
	FlagSuspiciousPhone    = "suspicious_phone"
	FlagSuspiciousActivity = "suspicious_activity"
)

const (
	SeverityMedium = "medium"
	SeverityHigh   = "high"
)

var suspiciousEmailPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^[a-z0-9]{20,}@`),         // very long local part
	regexp.MustCompile(`(?i)^temp[0-9]+@`),            // throwaway naming
	regexp.MustCompile(`(?i)^[a-z0-9]{8,}[0-9]{4,}@`), // random alnum + digit tail
	regexp.MustCompile(`(?i)@(mailinator|tempmail|guerrilla|10minutemail|yopmail|throwaway)`),
}

var suspiciousPhonePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^1234`),
	regexp.MustCompile(`0000`),
	regexp.MustCompile(`^(123|456|789|000|111|222|333|444|555|666|777|888|999)`),
}

// FakeProfileDetector scores an owner profile against four independent rules.
// The verdict confidence is the average weight of the rules that fired, not
// their sum: with the current weights (max 0.4) it can never exceed the 0.75
// IsFake threshold, so IsFake only trips once stronger rules are added or the
// averaging policy changes. The flags and confidence are still surfaced so
// callers can act on individual signals.
type FakeProfileDetector struct {
	now func() time.Time
}

func NewFakeProfileDetector() *FakeProfileDetector {
	return &FakeProfileDetector{now: time.Now}
}

func (d *FakeProfileDetector) Detect(p *domain.OwnerProfile) domain.FakeIDVerdict {
	v := domain.FakeIDVerdict{Flags: []domain.FraudFlag{}}
	if p == nil {
		return v
	}

	var total float64
	add := func(typ, severity, desc string, weight float64) {
		v.Flags = append(v.Flags, domain.FraudFlag{Type: typ, Severity: severity, Description: desc})
		total += weight
	}

	if completeness(p) < 0.7 {
		add(FlagIncompleteProfile, SeverityMedium, "Profile is missing important information", 0.3)
	}
	if p.Email != "" && matchesAny(suspiciousEmailPatterns, p.Email) {
		add(FlagSuspiciousEmail, SeverityHigh, "Email pattern matches known suspicious patterns", 0.4)
	}
	if p.Phone != "" && matchesAny(suspiciousPhonePatterns, p.Phone) {
		add(FlagSuspiciousPhone, SeverityHigh, "Phone number pattern is suspicious or invalid", 0.4)
	}
	if d.suspiciousActivity(p) {
		add(FlagSuspiciousActivity, SeverityMedium, "User activity pattern matches known suspicious patterns", 0.3)
	}

	if n := len(v.Flags); n > 0 {
		v.Confidence = total / float64(n)
	}
	v.IsFake = v.Confidence > fakeIDThreshold
	return v
}

// suspiciousActivity: a brand-new account that already carries many listings.
func (d *FakeProfileDetector) suspiciousActivity(p *domain.OwnerProfile) bool {
	return !p.CreatedAt.IsZero() &&
		d.now().Sub(p.CreatedAt) < 24*time.Hour &&
		p.ListingsCount > 5
}

// completeness is the fraction of identity fields that are present and
// non-blank.
func completeness(p *domain.OwnerProfile) float64 {
	fields := []string{p.Name, p.Email, p.Phone, p.Address, p.IDProof}
	done := 0
	for _, f := range fields {
		if strings.TrimSpace(f) != "" {
			done++
		}
	}
	return float64(done) / float64(len(fields))
}

func matchesAny(patterns []*regexp.Regexp, s string) bool {
	for _, p := range patterns {
		if p.MatchString(s) {
			return true
		}
	}
	return false
}
