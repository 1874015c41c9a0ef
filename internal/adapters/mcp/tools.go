package mcp

import (
	"context"
	"fmt"
	"log/slog"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/jsamuelsen11/pio-home/internal/adapters/http/dto"
	"github.com/jsamuelsen11/pio-home/internal/platform/async"
	"github.com/jsamuelsen11/pio-home/internal/ports"
)

// Tool names.
const (
	ToolListProjects  = "list_projects"
	ToolInitProject   = "init_project"
	ToolImportArduino = "import_arduino"
	ToolImportPIO     = "import_pio"
	ToolListExamples  = "list_examples"
)

// ListProjectsInput are the arguments of list_projects.
type ListProjectsInput struct {
	ProjectDirs []string `json:"project_dirs,omitempty" jsonschema:"project directories to summarize; the recent projects list is used when empty"`
}

// ListProjectsOutput is the result of list_projects.
type ListProjectsOutput struct {
	Projects []dto.ProjectSummary `json:"projects"`
}

// InitProjectInput are the arguments of init_project.
type InitProjectInput struct {
	Board      string `json:"board" jsonschema:"board ID, e.g. uno"`
	Framework  string `json:"framework,omitempty" jsonschema:"framework to configure, e.g. arduino or mbed"`
	ProjectDir string `json:"project_dir" jsonschema:"directory to initialize; created when missing"`
}

// ImportArduinoInput are the arguments of import_arduino.
type ImportArduinoInput struct {
	Board             string `json:"board" jsonschema:"board ID for the new project"`
	UseArduinoLibs    bool   `json:"use_arduino_libs,omitempty" jsonschema:"add the Arduino IDE libraries folder to the library search path"`
	ArduinoProjectDir string `json:"arduino_project_dir" jsonschema:"sketch directory holding <name>.ino"`
}

// ImportPIOInput are the arguments of import_pio.
type ImportPIOInput struct {
	ProjectDir string `json:"project_dir" jsonschema:"directory holding platformio.ini"`
}

// ProjectDirOutput is the result of the project creation tools.
type ProjectDirOutput struct {
	ProjectDir string `json:"project_dir"`
}

// ListExamplesOutput is the result of list_examples.
type ListExamplesOutput struct {
	Catalogs []dto.ExampleCatalog `json:"catalogs"`
}

type tools struct {
	projects ports.ProjectService
	logger   *slog.Logger
}

func registerTools(server *sdkmcp.Server, t *tools) {
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        ToolListProjects,
		Description: "Summarize project directories: boards, environment library folders and extra library folders",
		Annotations: &sdkmcp.ToolAnnotations{ReadOnlyHint: true},
	}, t.listProjects)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        ToolInitProject,
		Description: "Initialize a project directory for a board, writing a main.cpp skeleton for known frameworks",
	}, t.initProject)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        ToolImportArduino,
		Description: "Convert an Arduino sketch into a new project under the projects directory",
	}, t.importArduino)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        ToolImportPIO,
		Description: "Copy an existing project into the projects directory and re-initialize it",
	}, t.importPIO)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        ToolListExamples,
		Description: "List the example projects shipped with installed platforms",
		Annotations: &sdkmcp.ToolAnnotations{ReadOnlyHint: true},
	}, t.listExamples)
}

func (t *tools) listProjects(ctx context.Context, _ *sdkmcp.CallToolRequest, in ListProjectsInput) (*sdkmcp.CallToolResult, ListProjectsOutput, error) {
	summaries, err := t.projects.ListProjects(ctx, in.ProjectDirs)
	if err != nil {
		return nil, ListProjectsOutput{}, t.toolError(ctx, ToolListProjects, err)
	}
	return nil, ListProjectsOutput{Projects: dto.ToProjectSummaries(summaries)}, nil
}

func (t *tools) initProject(ctx context.Context, _ *sdkmcp.CallToolRequest, in InitProjectInput) (*sdkmcp.CallToolResult, ProjectDirOutput, error) {
	p, err := t.projects.InitProject(ctx, ports.InitRequest{
		Board:      in.Board,
		Framework:  in.Framework,
		ProjectDir: in.ProjectDir,
	})
	return t.awaitDir(ctx, ToolInitProject, p, err)
}

func (t *tools) importArduino(ctx context.Context, _ *sdkmcp.CallToolRequest, in ImportArduinoInput) (*sdkmcp.CallToolResult, ProjectDirOutput, error) {
	p, err := t.projects.ImportForeign(ctx, ports.ImportForeignRequest{
		Board:         in.Board,
		UseVendorLibs: in.UseArduinoLibs,
		SourceDir:     in.ArduinoProjectDir,
	})
	return t.awaitDir(ctx, ToolImportArduino, p, err)
}

func (t *tools) importPIO(ctx context.Context, _ *sdkmcp.CallToolRequest, in ImportPIOInput) (*sdkmcp.CallToolResult, ProjectDirOutput, error) {
	p, err := t.projects.ImportNative(ctx, ports.ImportNativeRequest{SourceDir: in.ProjectDir})
	return t.awaitDir(ctx, ToolImportPIO, p, err)
}

func (t *tools) listExamples(ctx context.Context, _ *sdkmcp.CallToolRequest, _ struct{}) (*sdkmcp.CallToolResult, ListExamplesOutput, error) {
	catalogs, err := t.projects.ListExamples(ctx)
	if err != nil {
		return nil, ListExamplesOutput{}, t.toolError(ctx, ToolListExamples, err)
	}
	return nil, ListExamplesOutput{Catalogs: dto.ToExampleCatalogs(catalogs)}, nil
}

func (t *tools) awaitDir(ctx context.Context, tool string, p *async.Pending[string], err error) (*sdkmcp.CallToolResult, ProjectDirOutput, error) {
	if err != nil {
		return nil, ProjectDirOutput{}, t.toolError(ctx, tool, err)
	}
	dir, err := p.Wait(ctx)
	if err != nil {
		return nil, ProjectDirOutput{}, t.toolError(ctx, tool, err)
	}
	return nil, ProjectDirOutput{ProjectDir: dir}, nil
}

// toolError converts err into the tool failure reported to the client,
// using the same codes and redaction as the JSON-RPC surface.
func (t *tools) toolError(ctx context.Context, tool string, err error) error {
	rpcErr := dto.NewRPCError(err)
	if rpcErr.Code == dto.CodeInternalError {
		t.logger.ErrorContext(ctx, "mcp tool failed",
			slog.String("tool", tool),
			slog.Any("error", err),
		)
	}
	return fmt.Errorf("%s (code %d)", rpcErr.Message, rpcErr.Code)
}
