package server

import (
	"encoding/json"
	"fmt"

	log "github.com/sirupsen/logrus"

	"epconf/builder"
	"epconf/model"
	"epconf/registry"
)

// request types
const (
	TypeHeatBalance      = "heatBalance"
	TypePhaseChange      = "phaseChange"
	TypeRegisterMaterial = "registerMaterial"
	TypeMaterials        = "materials"

	TypeError    = "error"
	resultSuffix = "Result"
)

// Hub answers the build requests of one connection.
type Hub struct {
	b *builder.Builder
}

func NewHub(b *builder.Builder) *Hub {
	return &Hub{b: b}
}

// Handle answers one request. Replies to known types carry the request type
// with a "Result" suffix; anything that cannot be handled gets an "error"
// reply whose content is the reason.
func (h *Hub) Handle(msg model.Msg) model.Msg {
	var (
		content interface{}
		err     error
	)
	switch msg.Type {
	case TypeHeatBalance:
		content, err = h.heatBalance(msg.Content)
	case TypePhaseChange:
		content, err = h.phaseChange(msg.Content)
	case TypeRegisterMaterial:
		content, err = h.registerMaterial(msg.Content)
	case TypeMaterials:
		content, err = h.materials()
	default:
		err = fmt.Errorf("no such type %q", msg.Type)
	}
	if err != nil {
		log.WithField("type", msg.Type).WithError(err).Warn("request failed")
		return model.Msg{Type: TypeError, Content: err.Error()}
	}

	data, err := json.Marshal(content)
	if err != nil {
		return model.Msg{Type: TypeError, Content: err.Error()}
	}
	return model.Msg{Type: msg.Type + resultSuffix, Content: string(data)}
}

func (h *Hub) heatBalance(content string) (interface{}, error) {
	raw := model.RawFields{}
	if content != "" {
		if err := json.Unmarshal([]byte(content), &raw); err != nil {
			return nil, fmt.Errorf("decode heat balance fields: %w", err)
		}
	}
	res, err := h.b.HeatBalance(raw)
	return reply(res, err), nil
}

func (h *Hub) phaseChange(content string) (interface{}, error) {
	var in model.PhaseChangeInput
	if err := json.Unmarshal([]byte(content), &in); err != nil {
		return nil, fmt.Errorf("decode phase change input: %w", err)
	}
	res, err := h.b.PhaseChange(in)
	return reply(res, err), nil
}

func (h *Hub) registerMaterial(definition string) (interface{}, error) {
	m, err := registry.Register(h.b.Registry(), definition)
	if err != nil {
		return nil, fmt.Errorf("register material: %w", err)
	}
	return model.MaterialInfo{Name: m.Name, Category: string(m.Category)}, nil
}

func (h *Hub) materials() (interface{}, error) {
	lister, ok := h.b.Registry().(registry.Lister)
	if !ok {
		return nil, fmt.Errorf("the material registry cannot be listed")
	}
	list := lister.List()
	infos := make([]model.MaterialInfo, 0, len(list))
	for _, m := range list {
		infos = append(infos, model.MaterialInfo{Name: m.Name, Category: string(m.Category)})
	}
	return infos, nil
}

func reply(res builder.Result, err error) model.BuildReply {
	r := model.BuildReply{
		Text:        res.Text,
		Diagnostics: res.Diagnostics,
	}
	if err != nil {
		r.Error = err.Error()
	}
	return r
}
