// Package props resolves BioLockJ pipeline configuration files.
//
// # Usage
//
//	b := &props.Builder{
//	    StandardConfig: "/app/biolockj/resources/config/default/standard.properties",
//	    PlatformConfig: "/app/biolockj/resources/config/default/docker.properties",
//	    Files:          &locate.SearchPath{},
//	    Container:      &container.Environment{},
//	}
//	resolved, err := b.Build("myPipeline.properties")
//
// # Default Config Files
//
// Any file may list further files to merge beneath it:
//
//	pipeline.defaultProps=base.properties,../shared/email.properties
//
// The older key project.defaultProps is accepted too. References are
// followed transitively and breadth first. A file reached twice is loaded once,
// and a reference back to a file that is already loaded or already discovered
// is skipped silently, so cycles terminate. The discovery order is reversed
// before merging; the entry file is always applied last.
//
// # Module Declarations
//
// Lines of the entry file starting with #BioModule declare pipeline modules.
// The properties parser treats them as comments.
//
// # Escapes
//
// Backslashes are literal. A value such as C:\data\seqs loads unchanged.
package props
