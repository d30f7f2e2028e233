package oned

import (
	"testing"

	zxinggo "github.com/arvovision/barcode"
)

// --- Code 39 ---

func TestCode39RoundTrip(t *testing.T) {
	tests := []string{
		"HELLO",
		"WORLD",
		"12345",
		"TEST-123",
		"A B.C",
	}
	reader := NewCode39Reader()
	for _, tc := range tests {
		t.Run(tc, func(t *testing.T) {
			row := buildCode39(tc)
			result, err := reader.DecodeRow(0, row, nil)
			if err != nil {
				t.Fatalf("decode error for %q: %v", tc, err)
			}
			if result.Text != tc {
				t.Errorf("round-trip mismatch: got %q, want %q", result.Text, tc)
			}
			if result.Format != zxinggo.FormatCode39 {
				t.Errorf("format mismatch: got %v, want %v", result.Format, zxinggo.FormatCode39)
			}
		})
	}
}

func TestCode39CheckDigit(t *testing.T) {
	reader := NewCode39ReaderWithCheckDigit(true, false)
	row := buildCode39WithCheckDigit("HELLO")
	result, err := reader.DecodeRow(0, row, nil)
	if err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if result.Text != "HELLO" {
		t.Errorf("got %q, want %q", result.Text, "HELLO")
	}
}

// --- Code 128 ---

func TestCode128RoundTrip(t *testing.T) {
	tests := []string{
		"Hello",
		"12345678",
		"Test 123",
		"ABC-def",
		"1234567890",
	}
	reader := NewCode128Reader()
	for _, tc := range tests {
		t.Run(tc, func(t *testing.T) {
			row := buildCode128(tc)
			result, err := reader.DecodeRow(0, row, nil)
			if err != nil {
				t.Fatalf("decode error for %q: %v", tc, err)
			}
			if result.Text != tc {
				t.Errorf("round-trip mismatch: got %q, want %q", result.Text, tc)
			}
			if result.Format != zxinggo.FormatCode128 {
				t.Errorf("format mismatch: got %v, want %v", result.Format, zxinggo.FormatCode128)
			}
		})
	}
}

// --- EAN-13 ---

func TestEAN13RoundTrip(t *testing.T) {
	tests := []string{
		"5901234123457",
		"4006381333931",
		"0012345678905",
	}
	reader := NewEAN13Reader()
	for _, tc := range tests {
		t.Run(tc, func(t *testing.T) {
			row := buildEAN13(tc)
			result, err := reader.DecodeRow(0, row, nil)
			if err != nil {
				t.Fatalf("decode error for %q: %v", tc, err)
			}
			if result.Text != tc {
				t.Errorf("round-trip mismatch: got %q, want %q", result.Text, tc)
			}
			if result.Format != zxinggo.FormatEAN13 {
				t.Errorf("format mismatch: got %v, want %v", result.Format, zxinggo.FormatEAN13)
			}
		})
	}
}

// --- EAN-8 ---

func TestEAN8RoundTrip(t *testing.T) {
	tests := []string{
		"96385074",
		"12345670",
	}
	reader := NewEAN8Reader()
	for _, tc := range tests {
		t.Run(tc, func(t *testing.T) {
			row := buildEAN8(tc)
			result, err := reader.DecodeRow(0, row, nil)
			if err != nil {
				t.Fatalf("decode error for %q: %v", tc, err)
			}
			if result.Text != tc {
				t.Errorf("round-trip mismatch: got %q, want %q", result.Text, tc)
			}
			if result.Format != zxinggo.FormatEAN8 {
				t.Errorf("format mismatch: got %v, want %v", result.Format, zxinggo.FormatEAN8)
			}
		})
	}
}

// --- UPC-A ---

func TestUPCARoundTrip(t *testing.T) {
	tests := []string{
		"012345678905",
	}
	reader := NewUPCAReader()
	for _, tc := range tests {
		t.Run(tc, func(t *testing.T) {
			row := buildUPCA(tc)
			result, err := reader.DecodeRow(0, row, nil)
			if err != nil {
				t.Fatalf("decode error for %q: %v", tc, err)
			}
			if result.Text != tc {
				t.Errorf("round-trip mismatch: got %q, want %q", result.Text, tc)
			}
			if result.Format != zxinggo.FormatUPCA {
				t.Errorf("format mismatch: got %v, want %v", result.Format, zxinggo.FormatUPCA)
			}
		})
	}
}

// --- UPC-E ---

func TestUPCERoundTrip(t *testing.T) {
	tests := []string{
		"01234565",
	}
	reader := NewUPCEReader()
	for _, tc := range tests {
		t.Run(tc, func(t *testing.T) {
			row := buildUPCE(tc)
			result, err := reader.DecodeRow(0, row, nil)
			if err != nil {
				t.Fatalf("decode error for %q: %v", tc, err)
			}
			if result.Text != tc {
				t.Errorf("round-trip mismatch: got %q, want %q", result.Text, tc)
			}
			if result.Format != zxinggo.FormatUPCE {
				t.Errorf("format mismatch: got %v, want %v", result.Format, zxinggo.FormatUPCE)
			}
		})
	}
}

// --- Checksum ---

func TestUPCEANChecksum(t *testing.T) {
	tests := []struct {
		input string
		check int
	}{
		{"590123412345", 7},
		{"1234567890", 5},
	}
	for _, tc := range tests {
		got := GetStandardUPCEANChecksum(tc.input)
		if got != tc.check {
			t.Errorf("GetStandardUPCEANChecksum(%q) = %d, want %d", tc.input, got, tc.check)
		}
	}
}

func TestCheckStandardUPCEANChecksum(t *testing.T) {
	if !CheckStandardUPCEANChecksum("5901234123457") {
		t.Error("expected checksum to pass for 5901234123457")
	}
	if CheckStandardUPCEANChecksum("5901234123456") {
		t.Error("expected checksum to fail for 5901234123456")
	}
}

// --- UPC-E conversion ---

func TestConvertUPCEtoUPCA(t *testing.T) {
	tests := []struct {
		upce string
		upca string
	}{
		{"01234565", "012345000065"},
		{"01200003", "012000000003"},
	}
	for _, tc := range tests {
		got := ConvertUPCEtoUPCA(tc.upce)
		if got != tc.upca {
			t.Errorf("ConvertUPCEtoUPCA(%q) = %q, want %q", tc.upce, got, tc.upca)
		}
	}
}

// --- ITF ---

func TestITFRoundTrip(t *testing.T) {
	tests := []string{
		"123456",
		"00123456789012",
		"1234567890",
		"30712345000010",
	}
	reader := NewITFReader()
	for _, tc := range tests {
		t.Run(tc, func(t *testing.T) {
			row := buildITF(tc)
			result, err := reader.DecodeRow(0, row, nil)
			if err != nil {
				t.Fatalf("decode error for %q: %v", tc, err)
			}
			if result.Text != tc {
				t.Errorf("round-trip mismatch: got %q, want %q", result.Text, tc)
			}
			if result.Format != zxinggo.FormatITF {
				t.Errorf("format mismatch: got %v, want %v", result.Format, zxinggo.FormatITF)
			}
		})
	}
}

// --- Codabar ---

func TestCodabarRoundTrip(t *testing.T) {
	tests := []string{
		"123456",
		"1234-5678",
		"29.95",
		"100.00",
	}
	reader := NewCodabarReader()
	for _, tc := range tests {
		t.Run(tc, func(t *testing.T) {
			row := buildCodabar(tc)
			result, err := reader.DecodeRow(0, row, nil)
			if err != nil {
				t.Fatalf("decode error for %q: %v", tc, err)
			}
			if result.Text != tc {
				t.Errorf("round-trip mismatch: got %q, want %q", result.Text, tc)
			}
			if result.Format != zxinggo.FormatCodabar {
				t.Errorf("format mismatch: got %v, want %v", result.Format, zxinggo.FormatCodabar)
			}
		})
	}
}

// --- MultiFormatOneDReader ---

func TestMultiFormatOneDReaderCode39(t *testing.T) {
	row := buildCode39("HELLO")
	reader := NewMultiFormatOneDReader(nil)
	result, err := reader.DecodeRow(0, row, nil)
	if err != nil {
		t.Fatalf("multi-format decode error: %v", err)
	}
	if result.Text != "HELLO" {
		t.Errorf("got %q, want %q", result.Text, "HELLO")
	}
}
