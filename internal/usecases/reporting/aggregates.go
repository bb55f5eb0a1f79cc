package reporting

import (
	"context"
	"fmt"

	"github.com/boraedu/bora-hub-api/internal/domain"
	"github.com/boraedu/bora-hub-api/internal/usecases/selling"
	"github.com/boraedu/bora-hub-api/pkg/utils"
	"github.com/shopspring/decimal"
)

func money(value decimal.Decimal) string {
	return value.StringFixed(2)
}

func averageProgress(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	var sum float64
	for _, v := range values {
		sum += v
	}
	return utils.Percent(sum / float64(len(values)))
}

func (s *Service) aggregate(ctx context.Context, scope domain.ReportScope, tenantID string, period domain.Period) (map[string]any, error) {
	switch scope {
	case domain.ScopeSales:
		return s.salesAggregate(ctx, tenantID, period)
	case domain.ScopeCommissions:
		return s.commissionsAggregate(ctx, tenantID, period)
	case domain.ScopeTickets:
		return s.ticketsAggregate(ctx, tenantID, period)
	case domain.ScopeTasks:
		return s.tasksAggregate(ctx, tenantID, period)
	case domain.ScopeOKRs:
		return s.okrsAggregate(ctx, tenantID, period)
	case domain.ScopeContent:
		return s.contentAggregate(ctx, tenantID, period)
	case domain.ScopeEvents:
		return s.eventsAggregate(ctx, tenantID, period)
	case domain.ScopeMentorships:
		return s.mentorshipsAggregate(ctx, tenantID, period)
	case domain.ScopePDIs:
		return s.pdisAggregate(ctx, tenantID, period)
	case domain.ScopeSponsorships:
		return s.sponsorshipsAggregate(ctx, tenantID, period)
	}
	return nil, fmt.Errorf("escopo desconhecido: %s", scope)
}

func (s *Service) salesAggregate(ctx context.Context, tenantID string, period domain.Period) (map[string]any, error) {
	sales, err := s.sources.Sales.ListSales(ctx, tenantID, domain.SaleFilter{Period: period})
	if err != nil {
		return nil, err
	}

	total := decimal.Zero
	byStatus := map[string]int{}
	bySource := map[string]string{}
	sourceTotals := map[string]decimal.Decimal{}
	for _, sale := range sales {
		total = total.Add(sale.TotalValue)
		byStatus[string(sale.Status)]++
		sourceTotals[string(sale.Source)] = sourceTotals[string(sale.Source)].Add(sale.TotalValue)
	}
	for source, value := range sourceTotals {
		bySource[source] = money(value)
	}

	return map[string]any{
		"quantidade":       len(sales),
		"valor_total":      money(total),
		"por_status":       byStatus,
		"valor_por_origem": bySource,
	}, nil
}

func (s *Service) commissionsAggregate(ctx context.Context, tenantID string, period domain.Period) (map[string]any, error) {
	commissions, err := s.sources.Sales.ListCommissions(ctx, tenantID, domain.CommissionFilter{Period: period})
	if err != nil {
		return nil, err
	}

	totals := domain.CommissionSummary{}
	for _, commission := range commissions {
		totals.Add(commission.Status, commission.Value)
	}

	sellers := make([]map[string]any, 0)
	for _, summary := range selling.SummarizeCommissions(commissions) {
		sellers = append(sellers, map[string]any{
			"vendedor_id": summary.SellerID,
			"liberada":    money(summary.Released),
			"pendente":    money(summary.Pending),
			"total":       money(summary.Total),
		})
	}

	return map[string]any{
		"quantidade":   len(commissions),
		"pendente":     money(totals.Pending),
		"liberada":     money(totals.Released),
		"suspensa":     money(totals.Suspended),
		"cancelada":    money(totals.Cancelled),
		"total":        money(totals.Total),
		"por_vendedor": sellers,
	}, nil
}

func (s *Service) ticketsAggregate(ctx context.Context, tenantID string, period domain.Period) (map[string]any, error) {
	tickets, err := s.sources.Tickets.ListByPeriod(ctx, tenantID, period)
	if err != nil {
		return nil, err
	}

	now := s.now()
	byStatus := map[string]int{}
	byPriority := map[string]int{}
	var overdue, finished int
	for _, ticket := range tickets {
		byStatus[string(ticket.Status)]++
		byPriority[string(ticket.Priority)]++
		if ticket.IsOverdue(now) {
			overdue++
		}
		if ticket.Status.IsFinished() {
			finished++
		}
	}

	return map[string]any{
		"quantidade":     len(tickets),
		"finalizados":    finished,
		"sla_vencido":    overdue,
		"por_status":     byStatus,
		"por_prioridade": byPriority,
	}, nil
}

func (s *Service) tasksAggregate(ctx context.Context, tenantID string, period domain.Period) (map[string]any, error) {
	tasks, err := s.sources.Tasks.List(ctx, tenantID, domain.TaskFilter{Period: period})
	if err != nil {
		return nil, err
	}

	now := utils.StartOfDay(s.now())
	byStatus := map[string]int{}
	var late int
	for _, task := range tasks {
		byStatus[string(task.Status)]++
		if task.Status != domain.TaskStatusDone && task.DueDate != nil && task.DueDate.Before(now) {
			late++
		}
	}

	return map[string]any{
		"quantidade": len(tasks),
		"atrasadas":  late,
		"por_status": byStatus,
	}, nil
}

func (s *Service) okrsAggregate(ctx context.Context, tenantID string, period domain.Period) (map[string]any, error) {
	cycles, err := s.sources.OKRs.ListCycles(ctx, tenantID, period)
	if err != nil {
		return nil, err
	}

	summaries := make([]map[string]any, 0, len(cycles))
	progress := make([]float64, 0, len(cycles))
	for _, cycle := range cycles {
		var keyResults int
		for _, objective := range cycle.Objectives {
			keyResults += len(objective.KeyResults)
		}
		summaries = append(summaries, map[string]any{
			"ciclo":       cycle.Name,
			"status":      cycle.Status,
			"objetivos":   len(cycle.Objectives),
			"key_results": keyResults,
			"progresso":   utils.Percent(cycle.Progress),
		})
		progress = append(progress, cycle.Progress)
	}

	return map[string]any{
		"ciclos":          summaries,
		"progresso_medio": averageProgress(progress),
	}, nil
}

func (s *Service) contentAggregate(ctx context.Context, tenantID string, period domain.Period) (map[string]any, error) {
	posts, err := s.sources.Content.List(ctx, tenantID, domain.PostFilter{Period: period})
	if err != nil {
		return nil, err
	}

	byStatus := map[string]int{}
	byNetwork := map[string]int{}
	for _, post := range posts {
		byStatus[string(post.Status)]++
		byNetwork[post.Network]++
	}

	return map[string]any{
		"quantidade": len(posts),
		"publicados": byStatus[string(domain.PostStatusPublished)],
		"por_status": byStatus,
		"por_rede":   byNetwork,
	}, nil
}

func (s *Service) eventsAggregate(ctx context.Context, tenantID string, period domain.Period) (map[string]any, error) {
	events, err := s.sources.Events.List(ctx, tenantID, domain.EventFilter{Period: period})
	if err != nil {
		return nil, err
	}

	byType := map[string]int{}
	for _, event := range events {
		byType[event.Type]++
	}

	return map[string]any{
		"quantidade": len(events),
		"por_tipo":   byType,
	}, nil
}

// mentorshipsAggregate considera os processos iniciados até o fim do período
func (s *Service) mentorshipsAggregate(ctx context.Context, tenantID string, period domain.Period) (map[string]any, error) {
	processos, err := s.sources.Mentorships.ListProcessos(ctx, tenantID, "")
	if err != nil {
		return nil, err
	}

	byStatus := map[string]int{}
	progress := make([]float64, 0, len(processos))
	for _, processo := range processos {
		if !period.End.IsZero() && processo.StartedAt.After(period.EndOfDay()) {
			continue
		}
		byStatus[processo.Status]++
		progress = append(progress, processo.Progress)
	}

	return map[string]any{
		"quantidade":      len(progress),
		"por_status":      byStatus,
		"progresso_medio": averageProgress(progress),
	}, nil
}

func (s *Service) pdisAggregate(ctx context.Context, tenantID string, period domain.Period) (map[string]any, error) {
	pdis, err := s.sources.PDIs.List(ctx, tenantID, nil, "")
	if err != nil {
		return nil, err
	}

	byStatus := map[string]int{}
	progress := make([]float64, 0, len(pdis))
	for _, pdi := range pdis {
		if !period.Overlaps(pdi.StartDate, pdi.EndDate) {
			continue
		}
		byStatus[pdi.Status]++
		progress = append(progress, pdi.Progress)
	}

	return map[string]any{
		"quantidade":      len(progress),
		"por_status":      byStatus,
		"progresso_medio": averageProgress(progress),
	}, nil
}

func (s *Service) sponsorshipsAggregate(ctx context.Context, tenantID string, period domain.Period) (map[string]any, error) {
	sponsorships, err := s.sources.Sponsorships.List(ctx, tenantID, "", period)
	if err != nil {
		return nil, err
	}

	stages := make([]map[string]any, 0, len(domain.SponsorshipStatuses))
	for _, stage := range domain.BuildPipeline(sponsorships) {
		stages = append(stages, map[string]any{
			"status":     stage.Status,
			"quantidade": stage.Count,
			"valor":      money(stage.Value),
		})
	}

	return map[string]any{
		"quantidade": len(sponsorships),
		"funil":      stages,
	}, nil
}
