package consolidate

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dfgiraldo/pqr-pipeline/constants"
	"github.com/dfgiraldo/pqr-pipeline/internal/entity"
)

const runTimestampLayout = "20060102_150405"

// csvHeader is the flat-file column order the relational loader consumes.
var csvHeader = []string{
	"numero_radicado", "fecha", "nic", "documento_identidad",
	"nombres_apellidos", "telefono", "celular", "correo_electronico",
	"tipo_pqr", "canal_respuesta", "estado_solicitud", "numero_reclamo_sgc",
	"hash_registro", "archivo_origen", "fecha_procesamiento", "advertencias",
}

// masterFile is the shape of the per-run master JSON.
type masterFile struct {
	Empresa         constants.Company           `json:"empresa"`
	FechaGeneracion time.Time                   `json:"fecha_generacion"`
	TotalRegistros  int                         `json:"total_registros"`
	Registros       []entity.ConsolidatedRecord `json:"registros"`
}

// writeOutputs persists the timestamped CSV, master JSON and report, filling
// the corresponding paths in res.
func (s *Service) writeOutputs(empresa constants.Company, outputDir string, res *RunResult) error {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	ts := s.now().Format(runTimestampLayout)

	csvPath := filepath.Join(outputDir, fmt.Sprintf("%s_consolidated_%s.csv", empresa, ts))
	if err := writeCSV(csvPath, res.Records); err != nil {
		return err
	}
	res.CSVPath = csvPath

	jsonPath := filepath.Join(outputDir, fmt.Sprintf("%s_master_%s.json", empresa, ts))
	if err := writeJSON(jsonPath, masterFile{
		Empresa:         empresa,
		FechaGeneracion: s.now().UTC(),
		TotalRegistros:  len(res.Records),
		Registros:       res.Records,
	}); err != nil {
		return err
	}
	res.JSONPath = jsonPath

	reportPath := filepath.Join(outputDir, fmt.Sprintf("%s_processing_report_%s.json", empresa, ts))
	if err := writeJSON(reportPath, res.Report); err != nil {
		return err
	}
	res.ReportPath = reportPath

	return nil
}

func writeCSV(path string, records []entity.ConsolidatedRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, r := range records {
		row := []string{
			r.NumeroRadicado, r.Fecha, r.NIC, r.DocumentoIdentidad,
			r.NombresApellidos, r.Telefono, r.Celular, r.CorreoElectronico,
			r.TipoPQR, r.CanalRespuesta, r.EstadoSolicitud, r.NumeroReclamoSGC,
			r.HashRegistro, r.ArchivoOrigen,
			r.FechaProcesamiento.UTC().Format(time.RFC3339),
			strings.Join(r.Warnings, "; "),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}

// ReadMaster loads a master JSON produced by a consolidation run. The loader
// step consumes this.
func ReadMaster(path string) ([]entity.ConsolidatedRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read master %s: %w", path, err)
	}
	var m masterFile
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse master %s: %w", path, err)
	}
	return m.Registros, nil
}
