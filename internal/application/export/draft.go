package export

import (
	"fmt"
	"io"

	"go.yaml.in/yaml/v3"

	"prd-coach-api/internal/domain/entity"
	apperrors "prd-coach-api/pkg/errors"
)

// Draft 本地 PRD 草稿文件
//
//	idea:
//	  productIdea: Inventory sync for Shopify sellers
//	  purpose: deliverable
//	sections: []        # 可省略，默认使用内置章节
//	drafts:
//	  problem: Sellers oversell when ...
type Draft struct {
	Idea     entity.IdeaContext         `yaml:"idea"`
	Sections []entity.SectionDescriptor `yaml:"sections,omitempty"`
	Drafts   entity.ProgressState       `yaml:"drafts"`
}

// ReadDraft 解析 YAML 草稿。idea.productIdea 必填。
func ReadDraft(r io.Reader) (*Draft, error) {
	var d Draft
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&d); err != nil {
		if err == io.EOF {
			return nil, apperrors.ErrInvalidParam.WithDetail("empty draft file")
		}
		return nil, apperrors.ErrInvalidParam.WithError(fmt.Errorf("decode draft: %w", err))
	}
	if d.Idea.Title() == "" {
		return nil, apperrors.ErrInvalidParam.WithDetail("idea.productIdea is required")
	}
	if d.Drafts == nil {
		d.Drafts = entity.ProgressState{}
	}
	d.Sections = entity.NormalizeSectionIDs(d.Sections)
	return &d, nil
}

// WriteDraft 以 YAML 输出草稿，用于生成模板
func WriteDraft(w io.Writer, d *Draft) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return err
	}
	return enc.Close()
}
