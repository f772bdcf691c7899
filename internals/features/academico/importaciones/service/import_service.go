package service

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	amodel "academico_backend/internals/features/academico/asistencias/model"
	emodel "academico_backend/internals/features/academico/estudiantes/model"
	xmodel "academico_backend/internals/features/academico/examenes/model"
	xservice "academico_backend/internals/features/academico/examenes/service"
	impmodel "academico_backend/internals/features/academico/importaciones/model"
	imodel "academico_backend/internals/features/academico/inscripciones/model"
)

// ResumenImport es lo que se devuelve al frontend tras procesar un CSV.
type ResumenImport struct {
	Creados  int      `json:"creados"`
	Omitidos int      `json:"omitidos"`
	Errores  []string `json:"errores"`
}

// NuevaCorrida arma el registro de auditoría de una importación. El resumen
// completo queda serializado en el jsonb para que el frontend lo muestre tal
// como lo devolvió el endpoint.
func NuevaCorrida(tipo impmodel.TipoImport, archivo string, resumen ResumenImport) impmodel.ImportRunModel {
	corrida := impmodel.ImportRunModel{
		ImportRunTipo:     tipo,
		ImportRunArchivo:  archivo,
		ImportRunCreados:  resumen.Creados,
		ImportRunOmitidos: resumen.Omitidos,
		ImportRunErrores:  pq.StringArray(resumen.Errores),
	}
	if b, err := sonic.Marshal(resumen); err == nil {
		corrida.ImportRunResumen = datatypes.JSON(b)
	}
	return corrida
}

type filaCSV struct {
	numero int // número de fila en el archivo, contando el encabezado
	campos map[string]string
}

func (f filaCSV) campo(nombre string) string {
	return strings.TrimSpace(f.campos[nombre])
}

// leerCSV parsea el archivo completo usando la primera fila como
// encabezado (nombres en minúsculas).
func leerCSV(r io.Reader) ([]filaCSV, error) {
	lector := csv.NewReader(r)
	lector.TrimLeadingSpace = true

	encabezado, err := lector.Read()
	if err != nil {
		return nil, errors.New("el archivo está vacío o no es un CSV válido")
	}
	for i := range encabezado {
		encabezado[i] = strings.ToLower(strings.TrimSpace(encabezado[i]))
	}

	var filas []filaCSV
	for numero := 2; ; numero++ {
		registro, err := lector.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("fila %d: %v", numero, err)
		}
		campos := make(map[string]string, len(encabezado))
		for i, valor := range registro {
			if i < len(encabezado) {
				campos[encabezado[i]] = valor
			}
		}
		filas = append(filas, filaCSV{numero: numero, campos: campos})
	}
	return filas, nil
}

// estudiantesPorDNI trae en una sola consulta todos los estudiantes cuyos
// DNI aparecen en el archivo.
func estudiantesPorDNI(db *gorm.DB, filas []filaCSV) (map[string]uuid.UUID, error) {
	visto := map[string]bool{}
	dnis := make([]string, 0, len(filas))
	for _, f := range filas {
		if dni := f.campo("dni"); dni != "" && !visto[dni] {
			visto[dni] = true
			dnis = append(dnis, dni)
		}
	}

	porDNI := make(map[string]uuid.UUID, len(dnis))
	if len(dnis) == 0 {
		return porDNI, nil
	}

	var estudiantes []emodel.EstudianteModel
	if err := db.Where("estudiante_dni IN ?", dnis).Find(&estudiantes).Error; err != nil {
		return nil, err
	}
	for _, e := range estudiantes {
		porDNI[e.EstudianteDNI] = e.EstudianteID
	}
	return porDNI, nil
}

// ImportarInscripciones procesa un CSV con columnas dni, cohorte_id y
// opcionalmente fecha (YYYY-MM-DD) y estado.
func ImportarInscripciones(db *gorm.DB, r io.Reader) (ResumenImport, error) {
	resumen := ResumenImport{Errores: []string{}}

	filas, err := leerCSV(r)
	if err != nil {
		return resumen, err
	}
	porDNI, err := estudiantesPorDNI(db, filas)
	if err != nil {
		return resumen, err
	}

	for _, f := range filas {
		estudianteID, ok := porDNI[f.campo("dni")]
		if !ok {
			resumen.Omitidos++
			resumen.Errores = append(resumen.Errores,
				fmt.Sprintf("fila %d: no existe estudiante con DNI %q", f.numero, f.campo("dni")))
			continue
		}
		cohorteID, err := uuid.Parse(f.campo("cohorte_id"))
		if err != nil {
			resumen.Omitidos++
			resumen.Errores = append(resumen.Errores,
				fmt.Sprintf("fila %d: cohorte_id inválido", f.numero))
			continue
		}

		m := imodel.InscripcionModel{
			InscripcionEstudianteID: estudianteID,
			InscripcionCohorteID:    cohorteID,
			InscripcionEstado:       imodel.InscripcionActiva,
			InscripcionFecha:        time.Now(),
		}
		if raw := f.campo("fecha"); raw != "" {
			fecha, err := time.Parse("2006-01-02", raw)
			if err != nil {
				resumen.Omitidos++
				resumen.Errores = append(resumen.Errores,
					fmt.Sprintf("fila %d: fecha inválida (se espera YYYY-MM-DD)", f.numero))
				continue
			}
			m.InscripcionFecha = fecha
		}
		if estado := f.campo("estado"); estado != "" {
			m.InscripcionEstado = imodel.EstadoInscripcion(estado)
		}

		if err := db.Create(&m).Error; err != nil {
			resumen.Omitidos++
			resumen.Errores = append(resumen.Errores,
				fmt.Sprintf("fila %d: %v", f.numero, err))
			continue
		}
		resumen.Creados++
	}
	return resumen, nil
}

// ImportarAsistencias procesa un CSV con columnas dni, modulo_id, fecha y
// presente (1/0, true/false). El nombre del archivo queda como origen de
// cada registro creado.
func ImportarAsistencias(db *gorm.DB, r io.Reader, archivoOrigen string) (ResumenImport, error) {
	resumen := ResumenImport{Errores: []string{}}

	filas, err := leerCSV(r)
	if err != nil {
		return resumen, err
	}
	porDNI, err := estudiantesPorDNI(db, filas)
	if err != nil {
		return resumen, err
	}

	for _, f := range filas {
		estudianteID, ok := porDNI[f.campo("dni")]
		if !ok {
			resumen.Omitidos++
			resumen.Errores = append(resumen.Errores,
				fmt.Sprintf("fila %d: no existe estudiante con DNI %q", f.numero, f.campo("dni")))
			continue
		}
		moduloID, err := uuid.Parse(f.campo("modulo_id"))
		if err != nil {
			resumen.Omitidos++
			resumen.Errores = append(resumen.Errores,
				fmt.Sprintf("fila %d: modulo_id inválido", f.numero))
			continue
		}
		fecha, err := time.Parse("2006-01-02", f.campo("fecha"))
		if err != nil {
			resumen.Omitidos++
			resumen.Errores = append(resumen.Errores,
				fmt.Sprintf("fila %d: fecha inválida (se espera YYYY-MM-DD)", f.numero))
			continue
		}
		presente, err := strconv.ParseBool(f.campo("presente"))
		if err != nil {
			resumen.Omitidos++
			resumen.Errores = append(resumen.Errores,
				fmt.Sprintf("fila %d: presente inválido", f.numero))
			continue
		}

		m := amodel.AsistenciaModel{
			AsistenciaEstudianteID:  estudianteID,
			AsistenciaModuloID:      moduloID,
			AsistenciaFecha:         fecha,
			AsistenciaPresente:      presente,
			AsistenciaArchivoOrigen: archivoOrigen,
		}
		if err := db.Create(&m).Error; err != nil {
			resumen.Omitidos++
			resumen.Errores = append(resumen.Errores,
				fmt.Sprintf("fila %d: %v", f.numero, err))
			continue
		}
		resumen.Creados++
	}
	return resumen, nil
}

// ImportarNotas procesa un CSV con columnas dni, examen_id, calificacion y
// aprobado. Cada fila pasa por las mismas reglas de consistencia que la
// carga manual.
func ImportarNotas(db *gorm.DB, r io.Reader) (ResumenImport, error) {
	resumen := ResumenImport{Errores: []string{}}

	filas, err := leerCSV(r)
	if err != nil {
		return resumen, err
	}
	porDNI, err := estudiantesPorDNI(db, filas)
	if err != nil {
		return resumen, err
	}
	examenes, err := examenesDelArchivo(db, filas)
	if err != nil {
		return resumen, err
	}

	for _, f := range filas {
		estudianteID, ok := porDNI[f.campo("dni")]
		if !ok {
			resumen.Omitidos++
			resumen.Errores = append(resumen.Errores,
				fmt.Sprintf("fila %d: no existe estudiante con DNI %q", f.numero, f.campo("dni")))
			continue
		}
		examenID, err := uuid.Parse(f.campo("examen_id"))
		if err != nil {
			resumen.Omitidos++
			resumen.Errores = append(resumen.Errores,
				fmt.Sprintf("fila %d: examen_id inválido", f.numero))
			continue
		}
		examen, ok := examenes[examenID]
		if !ok {
			resumen.Omitidos++
			resumen.Errores = append(resumen.Errores,
				fmt.Sprintf("fila %d: no existe examen %s", f.numero, examenID))
			continue
		}
		calificacion, err := strconv.ParseFloat(f.campo("calificacion"), 64)
		if err != nil {
			resumen.Omitidos++
			resumen.Errores = append(resumen.Errores,
				fmt.Sprintf("fila %d: calificacion inválida", f.numero))
			continue
		}
		aprobado := false
		if raw := f.campo("aprobado"); raw != "" {
			if aprobado, err = strconv.ParseBool(raw); err != nil {
				resumen.Omitidos++
				resumen.Errores = append(resumen.Errores,
					fmt.Sprintf("fila %d: aprobado inválido", f.numero))
				continue
			}
		}

		redondeada, err := xservice.ValidarNota(xservice.NotaInput{
			Calificacion: calificacion,
			Aprobado:     aprobado,
			TipoExamen:   examen.ExamenTipo,
		})
		if err != nil {
			resumen.Omitidos++
			resumen.Errores = append(resumen.Errores,
				fmt.Sprintf("fila %d: %v", f.numero, err))
			continue
		}

		m := xmodel.NotaModel{
			NotaExamenID:     examenID,
			NotaEstudianteID: estudianteID,
			NotaCalificacion: redondeada,
			NotaAprobado:     aprobado,
		}
		if err := db.Create(&m).Error; err != nil {
			resumen.Omitidos++
			resumen.Errores = append(resumen.Errores,
				fmt.Sprintf("fila %d: %v", f.numero, err))
			continue
		}
		resumen.Creados++
	}
	return resumen, nil
}

func examenesDelArchivo(db *gorm.DB, filas []filaCSV) (map[uuid.UUID]xmodel.ExamenModel, error) {
	visto := map[uuid.UUID]bool{}
	ids := make([]uuid.UUID, 0, len(filas))
	for _, f := range filas {
		if id, err := uuid.Parse(f.campo("examen_id")); err == nil && !visto[id] {
			visto[id] = true
			ids = append(ids, id)
		}
	}

	porID := make(map[uuid.UUID]xmodel.ExamenModel, len(ids))
	if len(ids) == 0 {
		return porID, nil
	}
	var examenes []xmodel.ExamenModel
	if err := db.Where("examen_id IN ?", ids).Find(&examenes).Error; err != nil {
		return nil, err
	}
	for _, e := range examenes {
		porID[e.ExamenID] = e
	}
	return porID, nil
}
