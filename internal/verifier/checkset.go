package verifier

// Marker is a literal substring a component is expected to contain.
// Describes names what its absence suggests, e.g. "default export".
type Marker struct {
	Text      string `mapstructure:"text" json:"text" yaml:"text"`
	Describes string `mapstructure:"describes" json:"describes" yaml:"describes"`
}

// CheckSet is the declarative input of a verification run.
type CheckSet struct {
	RequiredFiles        []string `mapstructure:"required_files" json:"required_files" yaml:"required_files"`
	RequiredComponents   []string `mapstructure:"required_components" json:"required_components" yaml:"required_components"`
	RequiredScripts      []string `mapstructure:"required_scripts" json:"required_scripts" yaml:"required_scripts"`
	RequiredDependencies []string `mapstructure:"required_dependencies" json:"required_dependencies" yaml:"required_dependencies"`
	ComponentMarkers     []Marker `mapstructure:"component_markers" json:"component_markers" yaml:"component_markers"`

	Manifest     string `mapstructure:"manifest" json:"manifest" yaml:"manifest"`
	Markup       string `mapstructure:"markup" json:"markup" yaml:"markup"`
	RootMarker   string `mapstructure:"root_marker" json:"root_marker" yaml:"root_marker"`
	ScriptMarker string `mapstructure:"script_marker" json:"script_marker" yaml:"script_marker"`
}

// Defaults for the landing-page site.
const (
	DefaultManifest     = "package.json"
	DefaultMarkup       = "index.html"
	DefaultRootMarker   = `<div id="root">`
	DefaultScriptMarker = `src="/src/main.jsx"`
)

// DefaultRequiredFiles are the top-level files a Vite build needs.
func DefaultRequiredFiles() []string {
	return []string{
		"index.html",
		"package.json",
		"vite.config.js",
		"tailwind.config.js",
		"postcss.config.js",
		"src/main.jsx",
		"src/App.jsx",
		"src/index.css",
	}
}

// DefaultRequiredComponents are the page sections App.jsx imports.
func DefaultRequiredComponents() []string {
	return []string{
		"src/components/Navigation.jsx",
		"src/components/Hero.jsx",
		"src/components/Features.jsx",
		"src/components/LiveDemo.jsx",
		"src/components/CodeExamples.jsx",
		"src/components/About.jsx",
		"src/components/Footer.jsx",
	}
}

// DefaultRequiredScripts are the npm scripts the deploy pipeline runs.
func DefaultRequiredScripts() []string {
	return []string{"dev", "build", "preview"}
}

// DefaultRequiredDependencies are the runtime packages the site imports.
func DefaultRequiredDependencies() []string {
	return []string{"react", "react-dom", "react-router-dom"}
}

// DefaultComponentMarkers signal a React function component.
func DefaultComponentMarkers() []Marker {
	return []Marker{
		{Text: "export default", Describes: "default export"},
		{Text: "return", Describes: "return statement"},
	}
}

// DefaultCheckSet returns the checks for the landing-page site.
func DefaultCheckSet() CheckSet {
	return CheckSet{
		RequiredFiles:        DefaultRequiredFiles(),
		RequiredComponents:   DefaultRequiredComponents(),
		RequiredScripts:      DefaultRequiredScripts(),
		RequiredDependencies: DefaultRequiredDependencies(),
		ComponentMarkers:     DefaultComponentMarkers(),
		Manifest:             DefaultManifest,
		Markup:               DefaultMarkup,
		RootMarker:           DefaultRootMarker,
		ScriptMarker:         DefaultScriptMarker,
	}
}
