package mining_bench

import (
	"context"
	"strconv"
	"testing"

	"github.com/osse101/SkillForge_Go/internal/database/memory"
	"github.com/osse101/SkillForge_Go/internal/domain"
	"github.com/osse101/SkillForge_Go/internal/event"
	"github.com/osse101/SkillForge_Go/internal/mining"
	"github.com/osse101/SkillForge_Go/internal/skill"
)

// BenchmarkCurve_LevelForXP measures the level lookup at increasing XP totals
func BenchmarkCurve_LevelForXP(b *testing.B) {
	for _, level := range []int{10, 50, 100} {
		xp := skill.DefaultCurve.TotalXPForLevel(level) + 1
		b.Run("level_"+strconv.Itoa(level), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = skill.DefaultCurve.LevelForXP(xp)
			}
		})
	}
}

// BenchmarkHandleBlockBroken measures the cached hot path of an ore break
func BenchmarkHandleBlockBroken(b *testing.B) {
	ctx := context.Background()
	svc := mining.NewService(memory.NewStore(), nil, mining.DefaultConfig())
	defer func() { _ = svc.Shutdown(ctx) }()

	evt := domain.BlockBrokenEvent{PlayerID: "bench", BlockID: "Ore_Copper_Stone"}
	if _, err := svc.LoadPlayer(ctx, evt.PlayerID); err != nil {
		b.Fatalf("load failed: %v", err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := svc.HandleBlockBroken(ctx, evt); err != nil {
			b.Fatalf("break failed: %v", err)
		}
	}
}

// BenchmarkHandleBlockBroken_Parallel spreads breaks across many players
func BenchmarkHandleBlockBroken_Parallel(b *testing.B) {
	ctx := context.Background()
	bus := event.NewMemoryBus()
	publisher, err := event.NewResilientPublisher(bus, 1, 0, b.TempDir()+"/deadletter.jsonl")
	if err != nil {
		b.Fatalf("publisher: %v", err)
	}
	svc := mining.NewService(memory.NewStore(), publisher, mining.DefaultConfig())
	defer func() { _ = svc.Shutdown(ctx) }()

	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			evt := domain.BlockBrokenEvent{
				PlayerID: "bench_" + strconv.Itoa(i%64),
				BlockID:  "Ore_Iron_Stone",
			}
			if _, err := svc.HandleBlockBroken(ctx, evt); err != nil {
				b.Errorf("break failed: %v", err)
				return
			}
			i++
		}
	})
}

// BenchmarkHandleBlockBroken_NotOre is the early exit for ordinary blocks
func BenchmarkHandleBlockBroken_NotOre(b *testing.B) {
	ctx := context.Background()
	svc := mining.NewService(memory.NewStore(), nil, mining.DefaultConfig())

	evt := domain.BlockBrokenEvent{PlayerID: "bench", BlockID: "Rock_Stone"}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = svc.HandleBlockBroken(ctx, evt)
	}
}
