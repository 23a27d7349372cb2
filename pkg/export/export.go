// Package export orchestrates one full conversion: request validation,
// element building, document assembly and atomic file output. Element
// failures are tolerated record-by-record; request-level failures abort
// the whole export with no partial file left behind.
package export

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/infragrid/ifcforge/pkg/builder"
	"github.com/infragrid/ifcforge/pkg/geom"
	"github.com/infragrid/ifcforge/pkg/ifc"
	"github.com/infragrid/ifcforge/pkg/model"
	"github.com/infragrid/ifcforge/pkg/preview"
)

// Exporter runs exports. It is safe for concurrent use; every export
// builds its own document.
type Exporter struct {
	log *zap.Logger
	bus *Bus
}

// New creates an Exporter. Both arguments may be nil: a nil logger
// silences diagnostics, a nil bus disables progress events.
func New(log *zap.Logger, bus *Bus) *Exporter {
	if log == nil {
		log = zap.NewNop()
	}
	return &Exporter{log: log, bus: bus}
}

// Options tunes optional export outputs.
type Options struct {
	// PreviewPath, when set, writes the tessellated preview meshes as
	// JSON next to the exchange file.
	PreviewPath string
	// PreviewCells overrides the preview tessellation resolution.
	PreviewCells int
}

// Export converts the request into an exchange document and writes it to
// outputPath under a fresh export ID. The returned Result carries the
// per-collection counts; the error is non-nil exactly when
// Result.Success is false.
func (x *Exporter) Export(ctx context.Context, req *model.ExportRequest, outputPath string) (*Result, error) {
	return x.ExportWithOptions(ctx, uuid.NewString(), req, outputPath, Options{})
}

// ExportWithID runs an export under a caller-chosen ID, letting clients
// subscribe to the progress bus before the work starts.
func (x *Exporter) ExportWithID(ctx context.Context, exportID string, req *model.ExportRequest, outputPath string) (*Result, error) {
	return x.ExportWithOptions(ctx, exportID, req, outputPath, Options{})
}

// ExportWithOptions is ExportWithID with auxiliary outputs enabled.
func (x *Exporter) ExportWithOptions(ctx context.Context, exportID string, req *model.ExportRequest, outputPath string, opts Options) (*Result, error) {
	log := x.log.With(zap.String("export", exportID))

	res, err := x.run(ctx, log, exportID, req, outputPath, opts)
	if err != nil {
		log.Error("export failed", zap.Error(err))
		x.bus.Publish(Event{ExportID: exportID, Stage: StageFailed, Message: err.Error()})
		return failure(exportID, err), err
	}
	x.bus.Publish(Event{ExportID: exportID, Stage: StageDone, Message: res.File})
	return res, nil
}

func (x *Exporter) run(ctx context.Context, log *zap.Logger, exportID string, req *model.ExportRequest, outputPath string, opts Options) (*Result, error) {
	if req == nil {
		return nil, fmt.Errorf("export: nil request")
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("export: invalid request: %w", err)
	}

	mode := req.Mode()
	doc := ifc.NewDocument(ifc.ProjectInfo{
		Name:          req.Project.Name,
		UnitLabel:     req.Project.Unit,
		Origin:        req.Project.Origin,
		NorthAngle:    req.Project.NorthAngle,
		CRSName:       req.Project.EPSGCode,
		Elevation:     req.Project.Elevation,
		Georeferenced: mode == geom.ModeProjectRelative,
	})
	bctx := builder.NewContext(req.Project.Origin, mode, log)

	res := &Result{Success: true, ExportID: exportID}
	x.bus.Publish(Event{ExportID: exportID, Stage: StageStarted})

	type group struct {
		name  string
		total int
		count *int
		build func(i int) ([]*ifc.Element, error)
	}
	add := func(e *ifc.Element) ([]*ifc.Element, error) {
		if e == nil {
			return nil, nil
		}
		return []*ifc.Element{e}, nil
	}
	groups := []group{
		{"chambers", len(req.Chambers), &res.ChamberCount, func(i int) ([]*ifc.Element, error) {
			return builder.Chamber(bctx, req.Chambers[i]), nil
		}},
		{"pipes", len(req.Pipes), &res.PipeCount, func(i int) ([]*ifc.Element, error) {
			return add(builder.Pipe(bctx, req.Pipes[i]))
		}},
		{"cableTrays", len(req.CableTrays), &res.CableTrayCount, func(i int) ([]*ifc.Element, error) {
			return add(builder.CableTray(bctx, req.CableTrays[i]))
		}},
		{"hangers", len(req.Hangers), &res.HangerCount, func(i int) ([]*ifc.Element, error) {
			return add(builder.Hanger(bctx, req.Hangers[i]))
		}},
		{"publicLights", len(req.PublicLights), &res.LightCount, func(i int) ([]*ifc.Element, error) {
			return builder.PublicLight(bctx, req.PublicLights[i]), nil
		}},
		{"lightConnections", len(req.LightConnections), &res.ConnectionCount, func(i int) ([]*ifc.Element, error) {
			return add(builder.LightConnection(bctx, req.LightConnections[i]))
		}},
		{"roads", len(req.Roads), &res.RoadCount, func(i int) ([]*ifc.Element, error) {
			return add(builder.Road(bctx, req.Roads[i]))
		}},
		{"schemePaths", len(req.SchemePaths), &res.PathCount, func(i int) ([]*ifc.Element, error) {
			return add(builder.SchemePath(bctx, req.SchemePaths[i]))
		}},
	}

	for _, g := range groups {
		for i := 0; i < g.total; i++ {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("export: canceled while building %s: %w", g.name, err)
			}
			els, err := g.build(i)
			if err != nil {
				return nil, err
			}
			if len(els) == 0 {
				res.SkippedCount++
				continue
			}
			for _, e := range els {
				if err := doc.AddElement(e); err != nil {
					return nil, fmt.Errorf("export: %s[%d]: %w", g.name, i, err)
				}
			}
			*g.count++
			res.ElementCount += len(els)
			x.bus.Publish(Event{
				ExportID: exportID, Stage: StageBuilding,
				Group: g.name, Done: i + 1, Total: g.total,
			})
		}
	}

	x.bus.Publish(Event{ExportID: exportID, Stage: StageWriting, Message: outputPath})
	if err := writeAtomic(doc, outputPath); err != nil {
		return nil, fmt.Errorf("export: writing %s: %w", outputPath, err)
	}

	// Preview output is auxiliary: a failure is logged, never fatal.
	if opts.PreviewPath != "" {
		if err := writePreview(doc, opts); err != nil {
			log.Warn("preview output failed", zap.Error(err))
		}
	}

	res.File = outputPath
	log.Info("export complete",
		zap.String("file", outputPath),
		zap.Int("elements", res.ElementCount),
		zap.Int("skipped", res.SkippedCount))
	return res, nil
}

func writePreview(doc *ifc.Document, opts Options) error {
	meshes, err := preview.Document(doc, opts.PreviewCells)
	if err != nil {
		return err
	}
	data, err := json.Marshal(meshes)
	if err != nil {
		return err
	}
	return os.WriteFile(opts.PreviewPath, data, 0o644)
}

// writeAtomic serializes the document through a temp file in the target
// directory and renames it into place, so a failed export never leaves a
// truncated output file.
func writeAtomic(doc *ifc.Document, path string) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if err := doc.Write(tmp); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
