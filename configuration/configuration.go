// Package configuration defines the coordinator's recognised configuration surface, loaded
// with config.Load/config.LoadFromViper (viper + godotenv + pflag aliasing) and validated with
// go-ozzo/ozzo-validation through config.ValidateEmbedded composition.
package configuration

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/polyglotdb/coordinator/config"
	coordvalidation "github.com/polyglotdb/coordinator/validation"
)

// AdapterEndpointConfiguration is the per-store-kind network/auth/polling surface
// (`adapter.<kind>.endpoint`, `adapter.<kind>.auth`, `adapter.<kind>.health_interval`).
// Auth is an opaque blob carried base64-encoded so it survives dotenv files, flag values and
// the keyring round trip unchanged; see StoreAdapterCredentials.
type AdapterEndpointConfiguration struct {
	Endpoint       string        `mapstructure:"endpoint"`
	Auth           string        `mapstructure:"auth"`
	HealthInterval time.Duration `mapstructure:"health_interval"`
}

func (c *AdapterEndpointConfiguration) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Auth, coordvalidation.IsBase64),
		validation.Field(&c.HealthInterval, validation.Min(time.Millisecond)),
	)
}

// AdapterConfiguration composes the per-kind endpoint configuration for all four store kinds.
type AdapterConfiguration struct {
	Relational AdapterEndpointConfiguration `mapstructure:"relational"`
	Document   AdapterEndpointConfiguration `mapstructure:"document"`
	Vector     AdapterEndpointConfiguration `mapstructure:"vector"`
	Graph      AdapterEndpointConfiguration `mapstructure:"graph"`
}

func (c *AdapterConfiguration) Validate() error {
	return config.ValidateEmbedded(c)
}

// OpKindBatchConfiguration is the adaptive batch sizing surface for one operation kind
// (`batch.<op_kind>.max_size`, `batch.<op_kind>.coalesce_delay_ms`).
type OpKindBatchConfiguration struct {
	MinSize            int           `mapstructure:"min_size"`
	MaxSize            int           `mapstructure:"max_size"`
	InitialSize        int           `mapstructure:"initial_size"`
	CoalesceDelay      time.Duration `mapstructure:"coalesce_delay_ms"`
	TargetDuration     time.Duration `mapstructure:"target_duration_ms"`
	ReevaluateEvery    int           `mapstructure:"reevaluate_every"`
}

func (c *OpKindBatchConfiguration) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.MinSize, validation.Min(1)),
		validation.Field(&c.MaxSize, validation.Min(c.MinSize)),
		validation.Field(&c.InitialSize, validation.Min(c.MinSize), validation.Max(c.MaxSize)),
		validation.Field(&c.CoalesceDelay, validation.Min(time.Duration(0))),
		validation.Field(&c.ReevaluateEvery, validation.Min(1)),
	)
}

// BatchConfiguration composes per-op-kind batch configuration for write/read/exists.
type BatchConfiguration struct {
	Write  OpKindBatchConfiguration `mapstructure:"write"`
	Read   OpKindBatchConfiguration `mapstructure:"read"`
	Exists OpKindBatchConfiguration `mapstructure:"exists"`
}

func (c *BatchConfiguration) Validate() error {
	return config.ValidateEmbedded(c)
}

// DefaultOpKindBatchConfiguration returns the stock per-op-kind sizing: a few milliseconds of
// coalescing and a sizing reevaluation every 10 dispatches.
func DefaultOpKindBatchConfiguration() OpKindBatchConfiguration {
	return OpKindBatchConfiguration{
		MinSize:         1,
		MaxSize:         500,
		InitialSize:     10,
		CoalesceDelay:   5 * time.Millisecond,
		TargetDuration:  20 * time.Millisecond,
		ReevaluateEvery: 10,
	}
}

// SagaConfiguration is the orchestrator's timeout/retry surface (`saga.default_step_timeout`,
// `saga.default_transaction_timeout`, `saga.compensation_retries`).
type SagaConfiguration struct {
	DefaultStepTimeout        time.Duration `mapstructure:"default_step_timeout"`
	DefaultTransactionTimeout time.Duration `mapstructure:"default_transaction_timeout"`
	CompensationRetries       int           `mapstructure:"compensation_retries"`
	MaxStepRetries            int           `mapstructure:"max_step_retries"`
}

func (c *SagaConfiguration) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.DefaultStepTimeout, validation.Min(time.Millisecond)),
		validation.Field(&c.DefaultTransactionTimeout, validation.Min(c.DefaultStepTimeout)),
		validation.Field(&c.CompensationRetries, validation.Min(0)),
		validation.Field(&c.MaxStepRetries, validation.Min(0)),
	)
}

// StrategyConfiguration is the availability-polling surface
// (`strategy.unhealthy_after_failures`, `strategy.healthy_after_successes`).
type StrategyConfiguration struct {
	PollInterval            time.Duration `mapstructure:"poll_interval"`
	UnhealthyAfterFailures  int           `mapstructure:"unhealthy_after_failures"`
	HealthyAfterSuccesses   int           `mapstructure:"healthy_after_successes"`
	HealthCheckTimeout      time.Duration `mapstructure:"health_check_timeout"`
}

func (c *StrategyConfiguration) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.PollInterval, validation.Min(time.Millisecond)),
		validation.Field(&c.UnhealthyAfterFailures, validation.Min(1)),
		validation.Field(&c.HealthyAfterSuccesses, validation.Min(1)),
		validation.Field(&c.HealthCheckTimeout, validation.Min(time.Millisecond)),
	)
}

// DistributorConfiguration is the fan-out ceiling surface (`distributor.max_concurrent`).
type DistributorConfiguration struct {
	MaxConcurrent int `mapstructure:"max_concurrent"`
}

func (c *DistributorConfiguration) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.MaxConcurrent, validation.Min(1)),
	)
}

// RetentionConfiguration is the transaction-registry eviction surface
// (`retention.completed_tx_seconds`).
type RetentionConfiguration struct {
	CompletedTransactionRetention time.Duration `mapstructure:"completed_tx_seconds"`
}

func (c *RetentionConfiguration) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.CompletedTransactionRetention, validation.Min(time.Second)),
	)
}

// CoordinatorConfiguration is the root configuration object loaded via config.Load, composing
// every subsystem's configuration.
type CoordinatorConfiguration struct {
	Adapters     AdapterConfiguration     `mapstructure:"adapter"`
	Batch        BatchConfiguration       `mapstructure:"batch"`
	Saga         SagaConfiguration        `mapstructure:"saga"`
	Strategy     StrategyConfiguration    `mapstructure:"strategy"`
	Distributor  DistributorConfiguration `mapstructure:"distributor"`
	Retention    RetentionConfiguration   `mapstructure:"retention"`
}

func (c *CoordinatorConfiguration) Validate() error {
	return config.ValidateEmbedded(c)
}

// Default returns the stock configuration: saga timeouts and retention, strategy K/M flap
// suppression, and the distributor fan-out ceiling.
func Default() *CoordinatorConfiguration {
	return &CoordinatorConfiguration{
		Batch: BatchConfiguration{
			Write:  DefaultOpKindBatchConfiguration(),
			Read:   DefaultOpKindBatchConfiguration(),
			Exists: DefaultOpKindBatchConfiguration(),
		},
		Saga: SagaConfiguration{
			DefaultStepTimeout:        5 * time.Second,
			DefaultTransactionTimeout: 30 * time.Second,
			CompensationRetries:       3,
			MaxStepRetries:            3,
		},
		Strategy: StrategyConfiguration{
			PollInterval:           5 * time.Second,
			UnhealthyAfterFailures: 2,
			HealthyAfterSuccesses:  3,
			HealthCheckTimeout:     2 * time.Second,
		},
		Distributor: DistributorConfiguration{
			MaxConcurrent: 16,
		},
		Retention: RetentionConfiguration{
			CompletedTransactionRetention: time.Hour,
		},
	}
}
