package generator

import (
	"go/parser"
	"go/token"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridoystarlord/crudgen/introspect"
	"github.com/ridoystarlord/crudgen/schema"
	"github.com/ridoystarlord/crudgen/validator"
)

const testPrefix = "example.com/shop/src/api/v1"

func strPtr(s string) *string { return &s }

func usersDescriptor() *schema.ModuleDescriptor {
	return schema.NewModuleDescriptor("user", "users", []introspect.ExistingColumn{
		{ColumnName: "id", DataType: "int", IsNullable: false},
		{ColumnName: "name", DataType: "varchar", IsNullable: true},
		{ColumnName: "created", DataType: "datetime", IsNullable: true},
	})
}

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	engine, err := NewEngine(Options{
		ImportPrefix:    testPrefix + "/",
		SchemaNamespace: "dbo",
	})
	require.NoError(t, err)
	return engine
}

func renderByKind(t *testing.T, engine *Engine, desc *schema.ModuleDescriptor) map[Kind]string {
	t.Helper()
	artifacts, err := engine.Render(desc)
	require.NoError(t, err)

	out := make(map[Kind]string, len(artifacts))
	for _, a := range artifacts {
		out[a.Kind] = string(a.Content)
	}
	return out
}

var spaces = regexp.MustCompile(`[ \t]+`)

// squash collapses gofmt alignment so assertions do not depend on column widths.
func squash(s string) string {
	return spaces.ReplaceAllString(s, " ")
}

func TestRenderPaths(t *testing.T) {
	artifacts, err := newTestEngine(t).Render(usersDescriptor())
	require.NoError(t, err)

	paths := make([]string, 0, len(artifacts))
	for _, a := range artifacts {
		paths = append(paths, a.Path)
	}
	assert.Equal(t, []string{
		"user/domain/user_entity.go",
		"user/infrastructure/model/user_model.go",
		"user/application/user_usecase.go",
		"user/domain/user_repository.go",
		"user/infrastructure/repository/user_repository.go",
		"user/infrastructure/controller/user_controller.go",
		"user/infrastructure/services/user_services.go",
		"user/infrastructure/routes/user_routes.go",
	}, paths)
}

func TestRenderIsDeterministic(t *testing.T) {
	engine := newTestEngine(t)

	first, err := engine.Render(usersDescriptor())
	require.NoError(t, err)
	second, err := engine.Render(usersDescriptor())
	require.NoError(t, err)

	require.Len(t, first, 8)
	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].Path, second[i].Path)
		assert.Equal(t, first[i].Content, second[i].Content, first[i].Path)
	}
}

func TestRenderedSourcesParse(t *testing.T) {
	artifacts, err := newTestEngine(t).Render(usersDescriptor())
	require.NoError(t, err)

	wantPackage := map[Kind]string{
		KindEntity:              "domain",
		KindModel:               "model",
		KindUseCase:             "application",
		KindRepositoryInterface: "domain",
		KindRepository:          "repository",
		KindController:          "controller",
		KindServices:            "services",
		KindRoutes:              "routes",
	}

	for _, a := range artifacts {
		t.Run(string(a.Kind), func(t *testing.T) {
			file, err := parser.ParseFile(token.NewFileSet(), a.Path, a.Content, parser.ImportsOnly)
			require.NoError(t, err)
			assert.Equal(t, wantPackage[a.Kind], file.Name.Name)

			for _, imp := range file.Imports {
				p, err := strconv.Unquote(imp.Path.Value)
				require.NoError(t, err)
				if strings.HasPrefix(p, "example.com/") {
					assert.True(t, strings.HasPrefix(p, testPrefix+"/user/"), p)
				}
			}
		})
	}
}

func TestRenderModel(t *testing.T) {
	model := renderByKind(t, newTestEngine(t), usersDescriptor())[KindModel]

	assert.Equal(t, 1, strings.Count(model, "PrimaryKey: true"))
	assert.Equal(t, 1, strings.Count(model, "AllowNull: false"))
	assert.Equal(t, 2, strings.Count(model, "AllowNull: true"))
	assert.NotContains(t, model, "DefaultValue")
	assert.NotContains(t, model, "default:")

	assert.Contains(t, model, `{Name: "id", Type: scaffold.Integer, AllowNull: false, PrimaryKey: true},`)
	assert.Contains(t, model, `{Name: "name", Type: scaffold.String, AllowNull: true},`)
	assert.Contains(t, model, `{Name: "created", Type: scaffold.Date, AllowNull: true},`)

	flat := squash(model)
	assert.Contains(t, flat, "ID int64 `gorm:\"column:id;primaryKey;not null\"`")
	assert.Contains(t, flat, "Name *string `gorm:\"column:name\"`")
	// date columns are DATE for persistence but strings in Go
	assert.Contains(t, flat, "Created *string `gorm:\"column:created\"`")
	assert.Contains(t, flat, `Schema: "dbo",`)
	assert.Contains(t, flat, "Timestamps: false,")
	assert.Contains(t, model, "return UserSchema.QualifiedName()")
	assert.Contains(t, model, `scaffold "github.com/ridoystarlord/crudgen/scaffold"`)
}

func TestRenderModelDefaults(t *testing.T) {
	desc := schema.NewModuleDescriptor("audit", "audits", []introspect.ExistingColumn{
		{ColumnName: "id", DataType: "bigint"},
		{ColumnName: "is_deleted", DataType: "bit", IsNullable: true, ColumnDefault: strPtr("((0))")},
		{ColumnName: "note", DataType: "text", IsNullable: true, ColumnDefault: strPtr("'a;b'")},
		{ColumnName: "tick", DataType: "varchar", IsNullable: true, ColumnDefault: strPtr("'`'")},
		{ColumnName: "created_at", DataType: "int", IsNullable: true},
	})
	model := renderByKind(t, newTestEngine(t), desc)[KindModel]

	assert.Contains(t, model, `{Name: "is_deleted", Type: scaffold.Boolean, AllowNull: true, DefaultValue: scaffold.Default("((0))")},`)
	assert.Contains(t, model, `DefaultValue: scaffold.Default("'a;b'")`)

	flat := squash(model)
	assert.Contains(t, flat, "IsDeleted *bool `gorm:\"column:is_deleted;default:((0))\"`")
	assert.Contains(t, flat, "Note *string `gorm:\"column:note;default:'a\\\\;b'\"`")
	assert.Contains(t, flat, `Tick *string "gorm:\"column:tick;default:'`+"`"+`'\""`)
	assert.Contains(t, flat, "CreatedAt int64 `gorm:\"column:created_at;autoCreateTime:false;autoUpdateTime:false\"`")
}

func TestRenderEntity(t *testing.T) {
	entity := squash(renderByKind(t, newTestEngine(t), usersDescriptor())[KindEntity])

	assert.Contains(t, entity, "type User struct {")
	assert.Contains(t, entity, "ID int64 `json:\"id\"`")
	assert.Contains(t, entity, "Name *string `json:\"name\"`")
	assert.Contains(t, entity, "Created *string `json:\"created\"`")
}

func TestRenderLayersAgree(t *testing.T) {
	out := renderByKind(t, newTestEngine(t), usersDescriptor())

	assert.Contains(t, out[KindRepositoryInterface], "type UserRepository interface {")
	for _, method := range []string{"FindAll(", "FindByID(", "Create(", "Update(", "Delete("} {
		assert.Contains(t, out[KindRepositoryInterface], method)
		assert.Contains(t, out[KindRepository], ") "+method)
	}

	for _, op := range []string{"ListUsers", "GetUserByID", "CreateUser", "UpdateUser", "DeleteUser"} {
		assert.Contains(t, out[KindUseCase], ") "+op+"(ctx context.Context")
		assert.Contains(t, out[KindController], ") "+op+"(c *gin.Context) scaffold.Result")
		assert.Contains(t, out[KindRoutes], "scaffold.Async(ctrl."+op+")")
	}

	assert.Contains(t, out[KindUseCase], `"`+testPrefix+`/user/domain"`)
	assert.Contains(t, out[KindServices], "func NewUserService(db *gorm.DB) *UserService {")
	assert.Contains(t, out[KindServices], "repository.NewUserRepository(db)")
	assert.Contains(t, out[KindServices], "application.NewUserUseCase(repo)")
	assert.Contains(t, out[KindServices], "controller.NewUserController(useCase)")
}

func TestRenderRepositorySoftDeletes(t *testing.T) {
	repo := renderByKind(t, newTestEngine(t), usersDescriptor())[KindRepository]

	assert.Contains(t, repo, `WithSoftDeleteColumn("is_deleted")`)
	assert.Contains(t, repo, "return r.store.MarkDeleted(ctx, row)")
	assert.NotContains(t, repo, "r.store.Delete(")
	assert.Equal(t, 2, strings.Count(repo, `scaffold.NotFound("User")`))
	assert.Contains(t, repo, "scaffold.NewStore[model.UserModel](db, model.UserSchema)")
	assert.Contains(t, repo, "r.store.Update(ctx, row, fromUser(entity), fields)")
	assert.Contains(t, repo, "var _ domain.UserRepository = (*UserRepository)(nil)")
}

func TestRenderController(t *testing.T) {
	ctrl := renderByKind(t, newTestEngine(t), usersDescriptor())[KindController]

	assert.Contains(t, ctrl, `scaffold.Found(entity, err, scaffold.GetDataError, "User not found")`)
	for _, tag := range []string{"GetDataError", "CreateDataError", "UpdateDataError", "DeleteDataError"} {
		assert.Contains(t, ctrl, "scaffold.Fail(scaffold."+tag+", err)")
	}
	assert.Contains(t, ctrl, "scaffold.Success(http.StatusNoContent, []any{})")
	assert.Contains(t, ctrl, "fields, err := scaffold.BindFields(c, &input)")
}

func TestRenderRoutes(t *testing.T) {
	routes := renderByKind(t, newTestEngine(t), usersDescriptor())[KindRoutes]

	for _, route := range []string{
		`rg.GET("/", scaffold.Async(ctrl.ListUsers))`,
		`rg.GET("/:id", scaffold.Async(ctrl.GetUserByID))`,
		`rg.POST("/create", scaffold.Async(ctrl.CreateUser))`,
		`rg.PUT("/update/:id", scaffold.Async(ctrl.UpdateUser))`,
		`rg.DELETE("/delete/:id", scaffold.Async(ctrl.DeleteUser))`,
	} {
		assert.Contains(t, routes, route)
	}
	assert.Contains(t, routes, "func RegisterUserRoutes(rg *gin.RouterGroup, svc *services.UserService) {")
}

func TestRenderCustomOptions(t *testing.T) {
	engine, err := NewEngine(Options{
		ImportPrefix:     "example.com/app/modules",
		RuntimeImport:    "example.com/app/pkg/runtime",
		SoftDeleteColumn: "archived",
	})
	require.NoError(t, err)

	out := renderByKind(t, engine, usersDescriptor())
	assert.Contains(t, out[KindModel], `scaffold "example.com/app/pkg/runtime"`)
	assert.Contains(t, squash(out[KindModel]), `Schema: "",`)
	assert.Contains(t, out[KindRepository], `WithSoftDeleteColumn("archived")`)
	assert.Contains(t, out[KindRoutes], `"example.com/app/modules/user/infrastructure/services"`)
}

func TestRenderErrors(t *testing.T) {
	engine := newTestEngine(t)

	_, err := engine.Render(schema.NewModuleDescriptor("user", "users", nil))
	var renderErr *RenderError
	require.ErrorAs(t, err, &renderErr)
	assert.Equal(t, "user", renderErr.Module)
	assert.ErrorContains(t, err, "no columns")

	_, err = engine.Render(nil)
	require.ErrorAs(t, err, &renderErr)

	_, err = NewEngine(Options{})
	var cfgErr *validator.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "import prefix", cfgErr.Field)
}
