package iris

import (
	"errors"
	"strings"
	"testing"
)

const sampleCSV = `Id,SepalLengthCm,SepalWidthCm,PetalLengthCm,PetalWidthCm,Species
1,5.1,3.5,1.4,0.2,Iris-setosa
2,7.0,3.2,4.7,1.4,Iris-versicolor
3,6.3,3.3,6.0,2.5,Iris-virginica
`

func TestRead(t *testing.T) {
	records, err := Read(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}

	want := []Record{
		{SepalLength: 5.1, SepalWidth: 3.5, PetalLength: 1.4, PetalWidth: 0.2, Species: SpeciesSetosa},
		{SepalLength: 7.0, SepalWidth: 3.2, PetalLength: 4.7, PetalWidth: 1.4, Species: SpeciesVersicolor},
		{SepalLength: 6.3, SepalWidth: 3.3, PetalLength: 6.0, PetalWidth: 2.5, Species: SpeciesVirginica},
	}
	for i, rec := range records {
		if rec != want[i] {
			t.Errorf("record %d = %+v, want %+v", i, rec, want[i])
		}
	}
}

func TestRead_ColumnOrderIndependent(t *testing.T) {
	data := `Species,PetalWidthCm,PetalLengthCm,SepalWidthCm,SepalLengthCm
Iris-setosa,0.2,1.4,3.5,5.1
`
	records, err := Read(strings.NewReader(data))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	want := Record{SepalLength: 5.1, SepalWidth: 3.5, PetalLength: 1.4, PetalWidth: 0.2, Species: SpeciesSetosa}
	if records[0] != want {
		t.Errorf("record = %+v, want %+v", records[0], want)
	}
}

func TestRead_MissingColumn(t *testing.T) {
	data := `Id,SepalLengthCm,SepalWidthCm,PetalLengthCm,Species
1,5.1,3.5,1.4,Iris-setosa
`
	_, err := Read(strings.NewReader(data))
	if err == nil {
		t.Fatal("expected error for missing PetalWidthCm column")
	}

	var schemaErr *SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("expected *SchemaError, got %T: %v", err, err)
	}
	if schemaErr.Column != "PetalWidthCm" {
		t.Errorf("SchemaError.Column = %q, want %q", schemaErr.Column, "PetalWidthCm")
	}
	if !errors.Is(err, ErrMissingColumn) {
		t.Error("expected error to wrap ErrMissingColumn")
	}
}

func TestRead_BadMeasurement(t *testing.T) {
	data := `Id,SepalLengthCm,SepalWidthCm,PetalLengthCm,PetalWidthCm,Species
1,5.1,3.5,1.4,0.2,Iris-setosa
2,7.0,oops,4.7,1.4,Iris-versicolor
`
	_, err := Read(strings.NewReader(data))
	if err == nil {
		t.Fatal("expected error for non-numeric cell")
	}

	var schemaErr *SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("expected *SchemaError, got %T: %v", err, err)
	}
	if schemaErr.Row != 2 {
		t.Errorf("SchemaError.Row = %d, want 2", schemaErr.Row)
	}
	if schemaErr.Column != "SepalWidthCm" {
		t.Errorf("SchemaError.Column = %q, want %q", schemaErr.Column, "SepalWidthCm")
	}
}

func TestRead_UnknownSpecies(t *testing.T) {
	data := `Id,SepalLengthCm,SepalWidthCm,PetalLengthCm,PetalWidthCm,Species
1,5.1,3.5,1.4,0.2,Iris-borealis
`
	_, err := Read(strings.NewReader(data))
	if err == nil {
		t.Fatal("expected error for unknown species label")
	}

	var schemaErr *SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("expected *SchemaError, got %T: %v", err, err)
	}
	if schemaErr.Row != 1 || schemaErr.Column != "Species" {
		t.Errorf("SchemaError = row %d column %q, want row 1 column Species", schemaErr.Row, schemaErr.Column)
	}
}

func TestRead_EmptyDataset(t *testing.T) {
	data := "Id,SepalLengthCm,SepalWidthCm,PetalLengthCm,PetalWidthCm,Species\n"
	records, err := Read(strings.NewReader(data))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("expected 0 records, got %d", len(records))
	}
}

func TestLoad_Testdata(t *testing.T) {
	records, err := Load("testdata/iris_head.csv")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(records) != 12 {
		t.Fatalf("expected 12 records, got %d", len(records))
	}
	if records[0].Species != SpeciesSetosa {
		t.Errorf("first record species = %q, want setosa", records[0].Species)
	}
	if records[len(records)-1].Species != SpeciesVirginica {
		t.Errorf("last record species = %q, want virginica", records[len(records)-1].Species)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("testdata/nope.csv")
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}
