package metadata

const (
	ClusterHost               = "cluster.host"
	DefaultDemultiplexer      = "pipeline.defaultDemultiplexer"
	DefaultFastaConverter     = "pipeline.defaultFastaConverter"
	DefaultSeqMerger          = "pipeline.defaultSeqMerger"
	DefaultStatsModule        = "pipeline.defaultStatsModule"
	DetachJavaModules         = "pipeline.detachJavaModules"
	DisableAddImplicitModules = "pipeline.disableAddImplicitModules"
	DisableAddPreReqModules   = "pipeline.disableAddPreReqModules"
	DockerConfigPath          = "docker.configPath"
	DockerContainerName       = "docker.containerName"
	PipelineDefaultProps      = "pipeline.defaultProps"
	ProjectDefaultProps       = "project.defaultProps"
)

func builtinDescriptions() map[string]string {
	return map[string]string{
		ClusterHost:               "The remote cluster host URL (used for ssh, scp, rsync, etc).",
		DefaultDemultiplexer:      "Module to use for demultiplexing when the input is multiplexed.",
		DefaultFastaConverter:     "Module used to convert fastq files to fasta format when required.",
		DefaultSeqMerger:          "Module used to merge paired reads when required.",
		DefaultStatsModule:        "Java module used to generate statistics for the R modules.",
		DetachJavaModules:         "If true, Java modules run in a separate process from the pipeline manager.",
		DisableAddImplicitModules: "If true, implicit modules are not added to the pipeline.",
		DisableAddPreReqModules:   "If true, prerequisite modules are not added to the pipeline.",
		DockerConfigPath:          "Path to the config file applied on top of the standard config inside a container.",
		DockerContainerName:       "Name of the container running the pipeline.",
		PipelineDefaultProps:      "Comma separated list of config files whose properties apply unless overridden.",
		ProjectDefaultProps:       "Older name for " + PipelineDefaultProps + ".",
	}
}

func builtinTypes() map[string]Type {
	return map[string]Type{
		ClusterHost:               String,
		DefaultDemultiplexer:      String,
		DefaultFastaConverter:     String,
		DefaultSeqMerger:          String,
		DefaultStatsModule:        String,
		DetachJavaModules:         Boolean,
		DisableAddImplicitModules: Boolean,
		DisableAddPreReqModules:   Boolean,
		DockerConfigPath:          FilePath,
		DockerContainerName:       String,
		PipelineDefaultProps:      List,
		ProjectDefaultProps:       List,
	}
}
