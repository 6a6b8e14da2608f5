// Package transport exposes the REST surface of the gateway.
package transport

import (
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	gwruntime "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/tokengate-backend/internal/apperr"
	"github.com/goodnatureofminers/tokengate-backend/internal/engine"
	"github.com/goodnatureofminers/tokengate-backend/internal/model"
	"github.com/goodnatureofminers/tokengate-backend/internal/reveal"
)

const maxBodyBytes = 1 << 20

type Handler struct {
	actions  ActionSubmitter
	trees    CredentialTrees
	graph    GraphReader
	revealer Revealer
	logger   *zap.Logger
}

func NewHandler(actions ActionSubmitter, trees CredentialTrees, graph GraphReader, revealer Revealer, logger *zap.Logger) (*Handler, error) {
	if actions == nil || trees == nil || graph == nil || revealer == nil {
		return nil, errors.New("actions, trees, graph and revealer are required")
	}
	return &Handler{
		actions:  actions,
		trees:    trees,
		graph:    graph,
		revealer: revealer,
		logger:   logger.Named("transport"),
	}, nil
}

// Register binds the REST routes on the gateway mux.
func (h *Handler) Register(mux *gwruntime.ServeMux) error {
	routes := []struct {
		method  string
		pattern string
		handle  gwruntime.HandlerFunc
	}{
		{http.MethodPost, "/v1/actions/{action_id}", h.submitAction},
		{http.MethodGet, "/v1/credentials/{credential_id}/tree", h.credentialTree},
		{http.MethodGet, "/v1/credentials/{credential_id}/proof/{address}", h.inclusionProof},
		{http.MethodGet, "/v1/posts/{hash}/relationships", h.postRelationships},
		{http.MethodPost, "/v1/posts/{hash}/reveal", h.revealPost},
	}
	for _, route := range routes {
		if err := mux.HandlePath(route.method, route.pattern, route.handle); err != nil {
			return err
		}
	}
	return nil
}

type proofRequest struct {
	Proof        string   `json:"proof"`
	PublicInputs []string `json:"publicInputs"`
}

type submitRequest struct {
	Proofs  []proofRequest  `json:"proofs"`
	Payload json.RawMessage `json:"payload"`
}

type submitResponse struct {
	Success  bool                    `json:"success"`
	Status   engine.Status           `json:"status"`
	Replay   bool                    `json:"replay"`
	DataHash string                  `json:"dataHash"`
	JobID    string                  `json:"jobId,omitempty"`
	Hash     string                  `json:"hash,omitempty"`
	TweetID  string                  `json:"tweetId,omitempty"`
	Copies   []model.PostCopy        `json:"copies,omitempty"`
	Deleted  []model.PostCopy        `json:"deleted,omitempty"`
	Failures []model.PlatformFailure `json:"failures,omitempty"`
}

func (h *Handler) submitAction(w http.ResponseWriter, r *http.Request, params map[string]string) {
	var body submitRequest
	if err := decodeJSON(w, r, &body); err != nil {
		h.writeError(w, r, err)
		return
	}
	if len(body.Payload) == 0 {
		h.writeError(w, r, apperr.New(apperr.KindInvalidPayload, "payload is required"))
		return
	}
	proofs := make([]model.Proof, 0, len(body.Proofs))
	for i, p := range body.Proofs {
		raw, err := decodeProof(p.Proof)
		if err != nil {
			h.writeError(w, r, apperr.Wrap(apperr.KindInvalidProof, err, "proof %d", i))
			return
		}
		proofs = append(proofs, model.Proof{Proof: raw, PublicInputs: p.PublicInputs})
	}

	res, err := h.actions.Submit(r.Context(), engine.SubmitRequest{
		ActionID: params["action_id"],
		Proofs:   proofs,
		Payload:  body.Payload,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	status := http.StatusOK
	if res.Status != engine.StatusSuccess {
		status = http.StatusAccepted
	}
	writeJSON(w, status, submitResponse{
		Success:  res.Status == engine.StatusSuccess && res.Response.Success,
		Status:   res.Status,
		Replay:   res.Replay,
		DataHash: res.DataHash,
		JobID:    res.JobID,
		Hash:     res.Response.Hash,
		TweetID:  res.Response.TweetID,
		Copies:   res.Response.Copies,
		Deleted:  res.Response.Deleted,
		Failures: res.Response.Failures,
	})
}

// decodeProof accepts 0x-prefixed hex or standard base64.
func decodeProof(s string) ([]byte, error) {
	if s == "" {
		return nil, errors.New("empty proof")
	}
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		return hex.DecodeString(s[2:])
	}
	return base64.StdEncoding.DecodeString(s)
}

func (h *Handler) credentialTree(w http.ResponseWriter, r *http.Request, params map[string]string) {
	tree, err := h.trees.Tree(r.Context(), params["credential_id"])
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tree)
}

func (h *Handler) inclusionProof(w http.ResponseWriter, r *http.Request, params map[string]string) {
	path, err := h.trees.ProveInclusion(r.Context(), params["credential_id"], params["address"])
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, path)
}

type revealView struct {
	RevealHash string     `json:"revealHash"`
	Phrase     string     `json:"phrase,omitempty"`
	Signature  string     `json:"signature,omitempty"`
	Address    string     `json:"address,omitempty"`
	RevealedAt *time.Time `json:"revealedAt,omitempty"`
}

type postView struct {
	Hash          string        `json:"hash"`
	Target        model.Target  `json:"target"`
	OriginAccount string        `json:"originAccount"`
	Content       model.Content `json:"content"`
	Reveal        *revealView   `json:"reveal,omitempty"`
	CreatedAt     time.Time     `json:"createdAt"`
}

type relationshipView struct {
	PostHash      string       `json:"postHash"`
	Target        model.Target `json:"target"`
	TargetAccount string       `json:"targetAccount"`
	TargetID      string       `json:"targetId"`
	CreatedAt     time.Time    `json:"createdAt"`
}

type graphView struct {
	Post     postView           `json:"post"`
	Copies   []relationshipView `json:"copies"`
	Parent   *postView          `json:"parent,omitempty"`
	Siblings []relationshipView `json:"siblings"`
}

func toRevealView(c *model.RevealCommitment) *revealView {
	if c == nil {
		return nil
	}
	v := &revealView{RevealHash: c.RevealHash}
	// Reveal fields stay hidden until the author reveals.
	if c.Revealed() {
		v.Phrase, v.Signature, v.Address, v.RevealedAt = c.Phrase, c.Signature, c.Address, c.RevealedAt
	}
	return v
}

func toPostView(p model.Post) postView {
	return postView{
		Hash:          p.Hash,
		Target:        p.Target,
		OriginAccount: p.OriginAccount,
		Content:       p.Content,
		Reveal:        toRevealView(p.Reveal),
		CreatedAt:     p.CreatedAt,
	}
}

func toRelationshipViews(rels []model.PostRelationship) []relationshipView {
	out := make([]relationshipView, 0, len(rels))
	for _, rel := range rels {
		out = append(out, relationshipView{
			PostHash:      rel.PostHash,
			Target:        rel.Target,
			TargetAccount: rel.TargetAccount,
			TargetID:      rel.TargetID,
			CreatedAt:     rel.CreatedAt,
		})
	}
	return out
}

func (h *Handler) postRelationships(w http.ResponseWriter, r *http.Request, params map[string]string) {
	g, err := h.graph.PostGraph(r.Context(), params["hash"])
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	view := graphView{
		Post:     toPostView(g.Post),
		Copies:   toRelationshipViews(g.Copies),
		Siblings: toRelationshipViews(g.Siblings),
	}
	if g.Parent != nil {
		parent := toPostView(*g.Parent)
		view.Parent = &parent
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *Handler) revealPost(w http.ResponseWriter, r *http.Request, params map[string]string) {
	var req reveal.Request
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	req.PostHash = params["hash"]
	commitment, err := h.revealer.Reveal(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toRevealView(&commitment))
}
