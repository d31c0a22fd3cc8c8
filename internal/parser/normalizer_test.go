package parser

import (
	"strings"
	"testing"
)

const testHeader = "设备编号,安装位置,部件名称,规格型号,数量及长度,电机功率,备注"

func TestNormalizeKeepsRowOrderAndBlanks(t *testing.T) {
	csv := testHeader + "\n" +
		"HC-001,一号泵房,电机,Y2-132,1台,5.5KW,\n" +
		",,联轴器,LX3,1套,,\n" +
		"HC-002,二号泵房,水泵,ISG80,1台,3KW,备用\n"

	rows, err := Normalize(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(rows))
	}
	if rows[0][ColDeviceCode] != "HC-001" {
		t.Errorf("Expected first device code HC-001, got %q", rows[0][ColDeviceCode])
	}
	// The continuation row must survive with its blank device code intact.
	if rows[1][ColDeviceCode] != "" {
		t.Errorf("Expected blank device code on row 2, got %q", rows[1][ColDeviceCode])
	}
	if rows[1][ColComponent] != "联轴器" {
		t.Errorf("Expected 联轴器 on row 2, got %q", rows[1][ColComponent])
	}
	if rows[2][ColRemark] != "备用" {
		t.Errorf("Expected remark 备用 on row 3, got %q", rows[2][ColRemark])
	}
}

func TestNormalizeColumnOrderIsFree(t *testing.T) {
	csv := "备注,部件名称,设备编号,安装位置,规格型号,数量及长度,电机功率\n" +
		"remark-x,电机,HC-001,泵房,Y2,1台,5.5KW\n"

	rows, err := Normalize(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("Expected 1 row, got %d", len(rows))
	}
	if rows[0][ColDeviceCode] != "HC-001" {
		t.Errorf("Expected device code HC-001, got %q", rows[0][ColDeviceCode])
	}
	if rows[0][ColRemark] != "remark-x" {
		t.Errorf("Expected remark remark-x, got %q", rows[0][ColRemark])
	}
}

func TestNormalizeDropsRepeatedHeadersAndEmptyRows(t *testing.T) {
	// Two sheets pasted together: the header repeats mid-file.
	csv := testHeader + "\n" +
		"HC-001,泵房,电机,Y2,1台,5.5KW,\n" +
		",,,,,,\n" +
		testHeader + "\n" +
		"HC-002,车间,水泵,ISG80,1台,3KW,\n"

	rows, err := Normalize(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("Expected 2 rows after dropping header echo and blank row, got %d", len(rows))
	}
	if rows[1][ColDeviceCode] != "HC-002" {
		t.Errorf("Expected HC-002 as second row, got %q", rows[1][ColDeviceCode])
	}
}

func TestNormalizeMissingColumnLeavesKeyAbsent(t *testing.T) {
	csv := "设备编号,安装位置,部件名称,规格型号,数量及长度,电机功率\n" +
		"HC-001,泵房,电机,Y2,1台,5.5KW\n"

	rows, err := Normalize(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	if _, ok := rows[0][ColRemark]; ok {
		t.Errorf("Expected remark column to be absent from row shape")
	}
	if _, ok := rows[0][ColDeviceCode]; !ok {
		t.Errorf("Expected device code column present")
	}
}

func TestNormalizeRaggedRowsTolerated(t *testing.T) {
	csv := testHeader + "\n" +
		"HC-001,泵房,电机\n" // short row

	rows, err := Normalize(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	if rows[0][ColPower] != "" {
		t.Errorf("Expected missing cells to default to empty, got %q", rows[0][ColPower])
	}
}

func TestNormalizeFatalDecodeError(t *testing.T) {
	csv := testHeader + "\n" +
		"HC-001,\"bad\"quote,电机,Y2,1台,5.5KW,\n"

	_, err := Normalize(strings.NewReader(csv))
	if err == nil {
		t.Fatal("Expected a decode error for malformed quoting, got nil")
	}
}

func TestNormalizeStripsBOMFromHeader(t *testing.T) {
	csv := "\ufeff" + testHeader + "\n" +
		"HC-001,泵房,电机,Y2,1台,5.5KW,\n"

	rows, err := Normalize(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	if rows[0][ColDeviceCode] != "HC-001" {
		t.Errorf("Expected BOM-prefixed header still recognized, got row %v", rows[0])
	}
}

func TestNormalizeEmptyInput(t *testing.T) {
	rows, err := Normalize(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("Expected no rows for empty input, got %d", len(rows))
	}
}
