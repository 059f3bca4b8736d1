/*
 * Copyright 2021-2022 by Nedim Sabic Sabic
 * https://www.fibratus.io
 * All Rights Reserved.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *  http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package wec

import (
	"context"
	"fmt"
	"os"

	"github.com/enescakir/emoji"
	"github.com/rabbitstack/wincall/internal/bootstrap"
	"github.com/rabbitstack/wincall/internal/collector"
	"github.com/rabbitstack/wincall/pkg/util/multierror"
	"github.com/rabbitstack/wincall/pkg/util/spinner"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func apply(cmd *cobra.Command, args []string) error {
	if err := bootstrap.InitConfigAndLogger(cfg); err != nil {
		return err
	}
	subs, err := collector.LoadDefinitions(file, cfg.WEC)
	if err != nil {
		return fmt.Errorf("%v %v", emoji.DisappointedFace, err)
	}
	if dryRun {
		for _, sub := range subs {
			fmt.Fprintf(os.Stdout, "%v %s is valid\n", emoji.Package, sub.Name)
		}
		return nil
	}

	c := collector.New(cfg.WEC)
	for _, sub := range subs {
		if err := c.Apply(sub); err != nil {
			return fmt.Errorf("%v unable to apply %s: %v", emoji.DisappointedFace, sub.Name, err)
		}
		log.Infof("subscription %s applied", sub.Name)
		fmt.Fprintf(os.Stdout, "%v %s applied\n", emoji.Rocket, sub.Name)
		if sub.Enabled && len(sub.EventSources) == 0 && sub.Type == collector.TypeCollectorInitiated {
			fmt.Fprintf(os.Stdout, "%v %s has no event sources and won't collect anything\n", emoji.Warning, sub.Name)
		}
	}
	if !wait {
		return nil
	}

	ctx, cancel := bootstrap.SignalContext(context.Background())
	defer cancel()

	var errs []error
	for _, sub := range subs {
		if !sub.Enabled {
			continue
		}
		if err := waitActive(ctx, c, sub.Name); err != nil {
			errs = append(errs, err)
		}
	}
	return multierror.Wrap(errs...)
}

func waitActive(ctx context.Context, c *collector.Collector, name string) error {
	spin := spinner.Show("Waiting for " + name + " to become active")
	st, err := c.WaitActive(ctx, name)
	if err != nil {
		spin.Stop(false, err.Error())
		if st != nil {
			renderStatus(st)
		}
		return err
	}
	spin.Stop(true, name+" is active")
	return nil
}

func remove(cmd *cobra.Command, args []string) error {
	if err := bootstrap.InitConfigAndLogger(cfg); err != nil {
		return err
	}
	c := collector.New(cfg.WEC)
	for _, name := range args {
		if err := c.Delete(name); err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "%s deleted\n", name)
	}
	return nil
}

func retry(cmd *cobra.Command, args []string) error {
	if err := bootstrap.InitConfigAndLogger(cfg); err != nil {
		return err
	}
	c := collector.New(cfg.WEC)
	if err := c.Retry(args[0], sources...); err != nil {
		return err
	}
	if !wait {
		return nil
	}
	ctx, cancel := bootstrap.SignalContext(context.Background())
	defer cancel()
	return waitActive(ctx, c, args[0])
}
