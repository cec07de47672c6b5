package fraud

import (
	"math"
	"testing"
	"time"

	"safestay/internal/domain"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func detectorAt(now time.Time) *FakeProfileDetector {
	return &FakeProfileDetector{now: func() time.Time { return now }}
}

func cleanProfile() *domain.OwnerProfile {
	return &domain.OwnerProfile{
		Name:          "R. Srinivasan",
		Email:         "r.srinivasan@gmail.com",
		Phone:         "9876543210",
		Address:       "Anna Nagar, Chennai",
		IDProof:       "aadhaar",
		CreatedAt:     testNow.AddDate(-1, 0, 0),
		ListingsCount: 2,
	}
}

func TestFakeProfileDetector_NilProfile(t *testing.T) {
	v := NewFakeProfileDetector().Detect(nil)
	if v.IsFake || v.Confidence != 0 || len(v.Flags) != 0 {
		t.Fatalf("nil profile: got %+v", v)
	}
}

func TestFakeProfileDetector_CleanProfile(t *testing.T) {
	v := detectorAt(testNow).Detect(cleanProfile())
	if v.IsFake || v.Confidence != 0 || len(v.Flags) != 0 {
		t.Fatalf("clean profile: got %+v", v)
	}
}

func TestFakeProfileDetector_SuspiciousEmail(t *testing.T) {
	p := cleanProfile()
	p.Email = "aaaaaaaaaaaaaaaaaaaaaa@mailinator.com"
	v := detectorAt(testNow).Detect(p)

	if len(v.Flags) != 1 || v.Flags[0].Type != FlagSuspiciousEmail {
		t.Fatalf("flags: got %+v", v.Flags)
	}
	if v.Flags[0].Severity != SeverityHigh {
		t.Fatalf("severity: got %s", v.Flags[0].Severity)
	}
	// a single 0.4 flag averages to 0.4, below the 0.75 fake threshold
	if v.Confidence != 0.4 || v.IsFake {
		t.Fatalf("verdict: got confidence=%v isFake=%v", v.Confidence, v.IsFake)
	}
}

func TestFakeProfileDetector_SuspiciousPhonePatterns(t *testing.T) {
	for _, phone := range []string{"1234567890", "9870000123", "5551234567"} {
		p := cleanProfile()
		p.Phone = phone
		v := detectorAt(testNow).Detect(p)
		if len(v.Flags) != 1 || v.Flags[0].Type != FlagSuspiciousPhone {
			t.Fatalf("phone %s: got %+v", phone, v.Flags)
		}
	}
}

func TestFakeProfileDetector_IncompleteProfile(t *testing.T) {
	p := cleanProfile()
	p.Address = ""
	p.IDProof = "  " // blank counts as missing
	v := detectorAt(testNow).Detect(p)
	if len(v.Flags) != 1 || v.Flags[0].Type != FlagIncompleteProfile {
		t.Fatalf("flags: got %+v", v.Flags)
	}
	if v.Confidence != 0.3 {
		t.Fatalf("confidence: got %v, want 0.3", v.Confidence)
	}
}

func TestFakeProfileDetector_SuspiciousActivity(t *testing.T) {
	p := cleanProfile()
	p.CreatedAt = testNow.Add(-6 * time.Hour)
	p.ListingsCount = 8
	v := detectorAt(testNow).Detect(p)
	if len(v.Flags) != 1 || v.Flags[0].Type != FlagSuspiciousActivity {
		t.Fatalf("flags: got %+v", v.Flags)
	}

	// a day-old account with the same volume is fine
	p.CreatedAt = testNow.Add(-25 * time.Hour)
	if v := detectorAt(testNow).Detect(p); len(v.Flags) != 0 {
		t.Fatalf("old account flagged: %+v", v.Flags)
	}
}

// All four rules firing at once still averages to (0.3+0.4+0.4+0.3)/4 = 0.35,
// so IsFake stays false with the current weights. This pins the averaging
// policy: anyone switching it to a sum will see this fail.
func TestFakeProfileDetector_ThresholdUnreachable(t *testing.T) {
	p := &domain.OwnerProfile{
		Email:         "temp42@tempmail.org",
		Phone:         "1234000099",
		CreatedAt:     testNow.Add(-2 * time.Hour),
		ListingsCount: 9,
	}
	v := detectorAt(testNow).Detect(p)
	if len(v.Flags) != 4 {
		t.Fatalf("want all four flags, got %+v", v.Flags)
	}
	if math.Abs(v.Confidence-0.35) > 1e-9 {
		t.Fatalf("confidence: got %v, want 0.35", v.Confidence)
	}
	if v.IsFake {
		t.Fatalf("averaged confidence can never cross the threshold, got isFake=true")
	}
}
