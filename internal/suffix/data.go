package suffix

// calculatedSuffixes is the snapshot of what the last full discovery run
// produced. It feeds Combine alongside the correction sets.
var calculatedSuffixes = NewSet(
	"masterbackgroundnrsslitsstep",
	"ami3pipeline",
	"whitelightstep",
	"ami_average",
	"spec3pipeline",
	"wfscombine",
	"fringe",
	"resamplestep",
	"resample_spec",
	"saturationstep",
	"firstframestep",
	"testlinearpipeline",
	"cat",
	"systemcall",
	"alignrefsstep",
	"functionwrapper",
	"darkcurrentstep",
	"imprintstep",
	"source_catalog",
	"straylight",
	"amiaveragestep",
	"ami_normalize",
	"jumpstep",
	"resample",
	"sourcetypestep",
	"spec2pipeline",
	"tweakreg",
	"msaflagopenstep",
	"outlierdetectionstep",
	"saturation",
	"pathloss",
	"groupscalestep",
	"rampfit",
	"lastframe",
	"darkpipeline",
	"image2pipeline",
	"outlierdetectionstackstep",
	"tso3pipeline",
	"straylightstep",
	"sourcecatalogstep",
	"dark_current",
	"subtract_images",
	"mrs_imatch",
	"assignwcsstep",
	"skymatch",
	"extract_2d",
	"cubebuildstep",
	"spec2nrslamp",
	"ipc",
	"refpix",
	"image3pipeline",
	"superbiasstep",
	"hlspstep",
	"reset",
	"s2d",
	"ami_analyze",
	"subtractimagesstep",
	"flatfieldstep",
	"tsophotometrystep",
	"combine_1d",
	"step",
	"cubeskymatchstep",
	"i2d",
	"group_scale",
	"rscdstep",
	"stackrefsstep",
	"flat_field",
	"guidercdsstep",
	"mrsimatchstep",
	"align_refs",
	"dqinitstep",
	"outlierdetectionscaledstep",
	"superbias",
	"assign_wcs",
	"guidercds",
	"firstframe",
	"masterbackgroundstep",
	"master_background",
	"skymatchstep",
	"white_light",
	"persistencestep",
	"amianalyzestep",
	"backgroundstep",
	"photomstep",
	"background",
	"photom",
	"extract_1d",
	"cube_build",
	"wfscombinestep",
	"lastframestep",
	"aminormalizestep",
	"linearity",
	"rscd",
	"rampfitstep",
	"linearpipeline",
	"pipeline",
	"engdblog",
	"resamplespecstep",
	"persistence",
	"klip",
	"dq_init",
	"barshadowstep",
	"klipstep",
	"linearitystep",
	"hlsp",
	"pathlossstep",
	"refpixstep",
	"gainscalestep",
	"extract2dstep",
	"detector1pipeline",
	"fringestep",
	"dark",
	"whtlt",
	"guiderpipeline",
	"stackrefs",
	"imprint",
	"coron3pipeline",
	"resetstep",
	"combine1dstep",
	"outlier_detection_scaled",
	"srctype",
	"outlier_detection",
	"engdblogstep",
	"gain_scale",
	"ipcstep",
	"jump",
	"extract1dstep",
	"tweakregstep",
	"assignmtwcsstep",
	"assign_mtwcs",
	"wavecorrstep",
)
