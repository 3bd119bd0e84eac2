package model

import (
	"github.com/colet-sistemas/solicita/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// User is a portal user from the static directory
type User struct {
	ID   types.UserID `yaml:"id"`
	Name string       `yaml:"name"`
	Role string       `yaml:"role"`
}

// Validate validates the user entry
func (u *User) Validate() error {
	if u.ID == "" {
		return goerr.New("user ID is required")
	}
	if u.Name == "" {
		return goerr.New("user name is required")
	}
	return nil
}

// Client maps a client display name to its ordered database identifiers
type Client struct {
	Name      string   `yaml:"name"`
	Databases []string `yaml:"databases"`
}

// Validate validates the client entry
func (c *Client) Validate() error {
	if c.Name == "" {
		return goerr.New("client name is required")
	}
	if len(c.Databases) == 0 {
		return goerr.New("client needs at least one database",
			goerr.V("client", c.Name))
	}
	return nil
}

// Catalog holds the static lookup tables that feed the intake form option
// lists. Loaded once at startup and never mutated afterwards.
type Catalog struct {
	Users            []User                   `yaml:"users"`
	Clients          []Client                 `yaml:"clients"`
	ERPModules       []string                 `yaml:"erp_modules"`
	OperatingSystems []string                 `yaml:"operating_systems"`
	Themes           map[types.Category]Theme `yaml:"themes,omitempty"`
}

// Validate validates the catalog configuration
func (c *Catalog) Validate() error {
	if len(c.Users) == 0 {
		return goerr.New("at least one user is required")
	}
	userIDs := make(map[types.UserID]bool)
	for i, u := range c.Users {
		if err := u.Validate(); err != nil {
			return goerr.Wrap(err, "invalid user at index", goerr.V("index", i))
		}
		if userIDs[u.ID] {
			return goerr.New("duplicate user ID", goerr.V("id", u.ID))
		}
		userIDs[u.ID] = true
	}

	clientNames := make(map[string]bool)
	for i, cl := range c.Clients {
		if err := cl.Validate(); err != nil {
			return goerr.Wrap(err, "invalid client at index", goerr.V("index", i))
		}
		if clientNames[cl.Name] {
			return goerr.New("duplicate client name", goerr.V("name", cl.Name))
		}
		clientNames[cl.Name] = true
	}

	for cat, theme := range c.Themes {
		if !cat.IsValid() {
			return goerr.Wrap(ErrUnknownCategory, "theme for unknown category",
				goerr.V("category", cat))
		}
		if err := theme.Validate(); err != nil {
			return goerr.Wrap(err, "invalid theme", goerr.V("category", cat))
		}
	}

	return nil
}

// FindUser finds a user by ID
func (c *Catalog) FindUser(id types.UserID) *User {
	for _, u := range c.Users {
		if u.ID == id {
			result := u
			return &result
		}
	}
	return nil
}

// DatabasesForClient returns the database identifiers for a client, in
// catalog order. Returns nil when the client is unknown.
func (c *Catalog) DatabasesForClient(name string) []string {
	for _, cl := range c.Clients {
		if cl.Name == name {
			dbs := make([]string, len(cl.Databases))
			copy(dbs, cl.Databases)
			return dbs
		}
	}
	return nil
}

// ClientNames returns the client display names in catalog order
func (c *Catalog) ClientNames() []string {
	names := make([]string, 0, len(c.Clients))
	for _, cl := range c.Clients {
		names = append(names, cl.Name)
	}
	return names
}

// ThemeFor returns the theme for a category, falling back to the built-in
// defaults when the catalog does not override it
func (c *Catalog) ThemeFor(cat types.Category) (Theme, error) {
	if t, ok := c.Themes[cat]; ok {
		return t, nil
	}
	if t, ok := DefaultThemes()[cat]; ok {
		return t, nil
	}
	return Theme{}, goerr.Wrap(ErrUnknownCategory, "no theme for category",
		goerr.V("category", cat))
}

// DefaultCatalog returns the built-in static tables used when no catalog
// file is supplied
func DefaultCatalog() *Catalog {
	return &Catalog{
		Users: []User{
			{ID: "bruno", Name: "Bruno Fernandes", Role: "Equipe de Suporte"},
			{ID: "cristiane", Name: "Cristiane Lichmann", Role: "Equipe de Suporte"},
			{ID: "diegoC", Name: "Diego Cordeiro", Role: "Equipe de Suporte"},
			{ID: "diegoF", Name: "Diego Felipe", Role: "Equipe de Suporte"},
			{ID: "marcel", Name: "Marcel Jaques", Role: "Equipe de Suporte"},
			{ID: "thiago", Name: "Thiago Simon", Role: "Equipe de Suporte"},
			{ID: "cristiano", Name: "Cristiano Huhnfleisch", Role: "Equipe de Implantação"},
			{ID: "matheus", Name: "Matheus Pochmann", Role: "Equipe de Implantação"},
		},
		Clients: []Client{
			{Name: "Agro Santos e Ernesto -PE- (97)", Databases: []string{
				"10.0.0.252:/dados/BDClientes/BDdivina.fdb",
				"10.0.0.252:/dados/BDClientes/BDanaluisa.fdb",
				"10.0.0.252:/dados/BDClientes/BDsantos.fdb",
				"10.0.0.252:/dados/BDClientes/BDernesto.fdb",
			}},
			{Name: "Base HS/Blass/Filial (50)", Databases: []string{
				"10.0.0.252:/dados/BDClientes/BDbase.fdb",
				"10.0.0.252:/dados/BDClientes/BDblass.fdb",
			}},
			{Name: "Berlinerluft (83)", Databases: []string{
				"10.0.0.252:/dados/BDClientes/BDberlinerluft.fdb",
			}},
			{Name: "Biometal (176)", Databases: []string{
				"10.0.0.252:/dados/BDClientes/BDbiometal.fdb",
			}},
			{Name: "Blue/WJM/Juck (164)", Databases: []string{
				"10.0.0.252:/dados/BDClientes/BDblue.fdb",
				"10.0.0.252:/dados/BDClientes/BDwjm.fdb",
				"10.0.0.252:/dados/BDClientes/BDjuck.fdb",
			}},
			{Name: "Blueplast (96)", Databases: []string{
				"10.0.0.252:/dados/BDClientes/BDblueplast.fdb",
			}},
			{Name: "Bombas Beto (139)", Databases: []string{
				"10.0.0.252:/dados/BDClientes/BDbombasbeto.fdb",
			}},
			{Name: "Brutt (111)", Databases: []string{
				"10.0.0.252:/dados/BDClientes/BDbrutt.fdb",
			}},
			{Name: "Colet (Duo) (15)", Databases: []string{
				"10.0.0.252:/dados/BDColet/BDcolet.fdb",
			}},
			{Name: "Couros do Vale (179)", Databases: []string{
				"10.0.0.252:/dados/BDClientes/BDcourosdovale.fdb",
			}},
			{Name: "Crespi (66)", Databases: []string{
				"10.0.0.252:/dados/BDClientes/BDcrespi.fdb",
			}},
			{Name: "Dalpiaz (148)", Databases: []string{
				"10.0.0.252:/dados/BDClientes/BDdalpiaz.fdb",
			}},
			{Name: "Dover (28)", Databases: []string{
				"10.0.0.252:/dados/BDClientes/BDwds.fdb",
				"10.0.0.252:/dados/BDClientes/BDdover.fdb",
			}},
			{Name: "Dzainer (55)", Databases: []string{
				"10.0.0.252:/dados/BDClientes/BDdzainer.fdb",
			}},
			{Name: "EKT Industrial (175)", Databases: []string{
				"10.0.0.252:/dados/BDClientes/BDektindustrial.fdb",
			}},
			{Name: "Fable | F&R (165)", Databases: []string{
				"10.0.0.252:/dados/BDClientes/BDfable.fdb",
				"10.0.0.252:/dados/BDClientes/BDfer.fdb",
			}},
			{Name: "Fernanda (125)", Databases: []string{
				"10.0.0.252:/dados/BDClientes/BDfernanda.fdb",
			}},
			{Name: "Feroli (159)", Databases: []string{
				"10.0.0.252:/dados/BDClientes/BDferoli.fdb",
			}},
			{Name: "Golden Chemie (155)", Databases: []string{
				"10.0.0.252:/dados/BDClientes/BDgolden.fdb",
			}},
			{Name: "Guarutemper (173)", Databases: []string{
				"10.0.0.252:/dados/BDClientes/BDguarutemper.fdb",
			}},
			{Name: "Imac (51)", Databases: []string{
				"10.0.0.252:/dados/BDClientes/BDimac.fdb",
				"10.0.0.252:/dados/BDColet/BDimacsequenciamento.fdb",
			}},
			{Name: "Imex (156)", Databases: []string{
				"10.0.0.252:/dados/BDClientes/BDimex.fdb",
			}},
			{Name: "Indutherm (150)", Databases: []string{
				"10.0.0.252:/dados/BDClientes/BDindutherm.fdb",
			}},
			{Name: "Interpint (178)", Databases: []string{
				"10.0.0.252:/dados/BDClientes/BDinterpint.fdb",
			}},
			{Name: "JA Industrial (174)", Databases: []string{
				"10.0.0.252:/dados/BDClientes/BDinterpint.fdb",
				"10.0.0.252:/dados/BDClientes/BDinter-revest.fdb",
			}},
			{Name: "Jet Sola (186)", Databases: []string{
				"10.0.0.252:/dados/BDClientes/BDjetsola.fdb",
			}},
			{Name: "LLV (34)", Databases: []string{
				"10.0.0.252:/dados/BDClientes/BDllv.fdb",
			}},
			{Name: "Mach Tooling (191)", Databases: []string{
				"10.0.0.252:/dados/BDClientes/BDmachtooling.fdb",
			}},
			{Name: "Metal Moto (115)", Databases: []string{
				"10.0.0.252:/dados/BDClientes/BDmetalmoto.fdb",
			}},
			{Name: "Metal Paulista (135)", Databases: []string{
				"10.0.0.252:/dados/BDClientes/BDmetalpaulista.fdb",
			}},
			{Name: "Metal Sul (137)", Databases: []string{
				"10.0.0.252:/dados/BDClientes/BDmetalsul.fdb",
			}},
			{Name: "Metal Técnica (2)", Databases: []string{
				"10.0.0.252:/dados/BDClientes/BDmetaltecnica.fdb",
				"10.0.0.252:/dados/BDClientes/BDmetaltrat.fdb",
			}},
			{Name: "MK Sinter (123)", Databases: []string{
				"10.0.0.252:/dados/BDClientes/BDmksinter.fdb",
			}},
			{Name: "Natur (7)", Databases: []string{
				"10.0.0.252:/dados/BDClientes/BDnatur.fdb",
			}},
			{Name: "Niit Plasma (147)", Databases: []string{
				"10.0.0.252:/dados/BDClientes/BDttiplasma.fdb",
			}},
			{Name: "Nobre (119)", Databases: []string{
				"10.0.0.252:/dados/BDClientes/BDnobre.fdb",
			}},
			{Name: "Nobre Contabilidade Outras (121)", Databases: []string{
				"10.0.0.252:/dados/BDClientes/BDadeconto.fdb",
			}},
			{Name: "Palagi (172)", Databases: []string{
				"10.0.0.252:/dados/BDClientes/BDpalagi.fdb",
			}},
			{Name: "Paschoal & RT Metais (127)", Databases: []string{
				"10.0.0.252:/dados/BDClientes/BDpaschoal.fdb",
			}},
			{Name: "Padrão Componentes (183)", Databases: []string{
				"10.0.0.252:/dados/BDColet/BDcomponentes.fdb",
			}},
			{Name: "Padrão Curtume (94)", Databases: []string{
				"10.0.0.252:/dados/BDColet/BDcurtume.fdb",
			}},
			{Name: "Padrão Manufatura (59)", Databases: []string{
				"10.0.0.252:/dados/BDColet/BDmanufatura.fdb",
			}},
			{Name: "Padrão Tratamento Térmico (136)", Databases: []string{
				"10.0.0.252:/dados/BDColet/BDtratamentotermico.fdb",
			}},
			{Name: "Pitía Bilhar (170)", Databases: []string{
				"10.0.0.252:/dados/BDClientes/BDpitia.fdb",
			}},
			{Name: "Plasma (117)", Databases: []string{
				"10.0.0.252:/dados/BDClientes/BDplasma.fdb",
			}},
			{Name: "Projelmec (74)", Databases: []string{
				"10.0.0.252:/dados/BDClientes/BDprojelmec.fdb",
			}},
			{Name: "Reuter (65)", Databases: []string{
				"10.0.0.252:/dados/BDClientes/BDreuter.fdb",
				"10.0.0.252:/dados/BDClientes/BDmaristela.fdb",
			}},
			{Name: "Rototech (90)", Databases: []string{
				"10.0.0.252:/dados/BDClientes/BDrototech.fdb",
			}},
			{Name: "Salini MT (184)", Databases: []string{
				"10.0.0.252:/dados/BDClientes/BDsalinimt.fdb",
			}},
			{Name: "SFTech (171)", Databases: []string{
				"10.0.0.252:/dados/BDClientes/BDsftech.fdb",
			}},
			{Name: "Sinttec (153)", Databases: []string{
				"10.0.0.252:/dados/BDClientes/BDsinttec.fdb",
			}},
			{Name: "Spier (189)", Databases: []string{
				"10.0.0.252:/dados/BDClientes/BDspier.fdb",
			}},
			{Name: "SS Usinagem (187)", Databases: []string{
				"10.0.0.252:/dados/BDClientes/BDssusinagem.fdb",
			}},
			{Name: "Sud Leather (188)", Databases: []string{
				"10.0.0.252:/dados/BDClientes/BDsud.fdb",
			}},
			{Name: "Tecno-MIM (152)", Databases: []string{
				"10.0.0.252:/dados/BDClientes/BDtecnomim.fdb",
			}},
			{Name: "Tecnovacum (138)", Databases: []string{
				"10.0.0.252:/dados/BDClientes/BDtecnovacum.fdb",
			}},
			{Name: "Temperapar (169)", Databases: []string{
				"10.0.0.252:/dados/BDClientes/BDtemperapar.fdb",
			}},
			{Name: "Temperaville (190)", Databases: []string{
				"10.0.0.252:/dados/BDClientes/BDtemperaville.fdb",
			}},
			{Name: "Thermtec - PR (185)", Databases: []string{
				"10.0.0.252:/dados/BDClientes/BDthermtec.fdb",
			}},
			{Name: "Traterm (167)", Databases: []string{
				"10.0.0.252:/dados/BDClientes/BDtraterm.fdb",
			}},
			{Name: "Usimatos (177)", Databases: []string{
				"10.0.0.252:/dados/BDClientes/BDusimatos.fdb",
			}},
			{Name: "Valence (160)", Databases: []string{
				"10.0.0.252:/dados/BDClientes/BDvalence.fdb",
				"10.0.0.252:/dados/BDClientes/BDvlc.fdb",
			}},
			{Name: "Valesemi (97)", Databases: []string{
				"10.0.0.252:/dados/BDClientes/BDvalesemi.fdb",
			}},
			{Name: "Volts (77)", Databases: []string{
				"10.0.0.252:/dados/BDClientes/BDvolts.fdb",
			}},
			{Name: "Wolfstore (149)", Databases: []string{
				"10.0.0.252:/dados/BDClientes/BDstyle.fdb",
				"10.0.0.252:/dados/BDClientes/BDwolfstore.fdb",
				"10.0.0.252:/dados/BDClientes/BDwnordeste.fdb",
			}},
		},
		ERPModules: []string{
			"Módulo Alertas",
			"Módulo Cadastro de usuários e permissões",
			"Módulo Comercial",
			"Módulo Compras",
			"Módulo Contábil",
			"Módulo Curtume",
			"Módulo Engenharia",
			"Módulo Estoque",
			"Módulo Financeiro",
			"Módulo Fiscal",
			"Módulo Nota Fiscal de Saída",
			"Módulo Produção",
			"Módulo Programas Exclusivos",
			"Módulo Recebimento",
			"Módulo Tratamento Térmico",
		},
		OperatingSystems: []string{
			"Linux",
			"Windows 7",
			"Windows 8",
			"Windows 8.1",
			"Windows 10",
			"Windows 11",
			"Windows Server 2012",
			"Windows Server 2016",
			"Windows Server 2019",
			"Windows Server 2022",
			"Windows Server 2025",
		},
	}
}
