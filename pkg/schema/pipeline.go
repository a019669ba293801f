package schema

////////////////////////////////////////////////////////////////////////////////
// TYPES

// PipelineServer is an OpenAI connection which hosts pipelines. The
// index identifies the connection in pipeline operations.
type PipelineServer struct {
	URL string `json:"url"`
	Idx int    `json:"idx"`
}

// Pipeline is a python extension installed on a pipeline server,
// either a pipe which serves models or a filter which intercepts
// requests. Valves reports whether the pipeline can be configured.
type Pipeline struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Type   string `json:"type,omitempty"`
	Valves bool   `json:"valves,omitempty"`
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (p Pipeline) String() string {
	return Stringify(p)
}
