package svc

import (
	"log"

	"github.com/zeromicro/go-zero/core/logx"

	"votum-api/internal/config"
	"votum-api/pkg/brief"
	llmpkg "votum-api/pkg/llm"
)

type ServiceContext struct {
	Config config.Config

	LLM       llmpkg.LLMClient
	Assembler *brief.Assembler
}

func NewServiceContext(c config.Config) *ServiceContext {
	svc := &ServiceContext{Config: c}

	if c.LLM.Value == nil {
		log.Fatal("llm config is required")
	}
	client, err := llmpkg.NewClient(c.LLM.Value)
	if err != nil {
		log.Fatalf("failed to init llm client: %v", err)
	}
	svc.LLM = client

	tpl, err := llmpkg.LoadInstructionTemplate(c.InstructionTemplatePath())
	if err != nil {
		log.Fatalf("failed to load instruction template: %v", err)
	}
	instructions, err := tpl.Render(nil)
	if err != nil {
		log.Fatalf("failed to render instruction template: %v", err)
	}
	logx.Infof("instruction template loaded, digest=%s", tpl.Digest())

	svc.Assembler = brief.NewAssembler(instructions)
	return svc
}
