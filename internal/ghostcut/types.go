package ghostcut

// Wire types for the GhostCut gateway. Field names follow the remote
// contract, not local conventions.

type statusRequest struct {
	IDProjects []int64 `json:"idProjects"`
}

type statusResponse struct {
	Code int        `json:"code"`
	Msg  string     `json:"msg"`
	Body statusBody `json:"body"`
}

type statusBody struct {
	Content []statusContent `json:"content"`
}

type statusContent struct {
	IDProject       int64   `json:"idProject"`
	ProcessProgress float64 `json:"processProgress"`
	VideoURL        string  `json:"videoUrl"`
}

type renderRequest struct {
	URLs               []string `json:"urls"`
	Resolution         string   `json:"resolution,omitempty"`
	NeedChineseOcclude int      `json:"needChineseOcclude"`
	VideoInpaintMasks  string   `json:"videoInpaintMasks,omitempty"`
}

type renderResponse struct {
	Code int        `json:"code"`
	Msg  string     `json:"msg"`
	Body renderBody `json:"body"`
}

type renderBody struct {
	IDProject int64 `json:"idProject"`
}

// inpaintMask is one entry of the json-encoded videoInpaintMasks field.
// Region holds the four corners of a normalized rectangle, clockwise
// from top-left.
type inpaintMask struct {
	Type   string       `json:"type"`
	Start  float64      `json:"start"`
	End    float64      `json:"end"`
	Region [][2]float64 `json:"region"`
}
